package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "user@example.com", false},
		{"ValidWithPlus", "user+tag@example.co.uk", false},
		{"MissingAt", "userexample.com", true},
		{"MissingDomain", "user@", true},
		{"MissingTLD", "user@example", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password1"))
	assert.Error(t, ValidatePassword("short1"), "below minimum length")
	assert.Error(t, ValidatePassword("passwordonly"), "no digit")
	assert.Error(t, ValidatePassword("12345678"), "no letter")
	assert.Error(t, ValidatePassword(strings.Repeat("a1", 70)), "above maximum length")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jay"))
	assert.Error(t, ValidateName("J"))
	assert.Error(t, ValidateName(strings.Repeat("a", 51)))
}

func TestValidateNewsTitle(t *testing.T) {
	assert.Error(t, ValidateNewsTitle("abcd"), "4 chars is below the minimum")
	assert.NoError(t, ValidateNewsTitle("abcde"), "5 chars is the minimum")
	assert.NoError(t, ValidateNewsTitle(strings.Repeat("t", 150)))
	assert.Error(t, ValidateNewsTitle(strings.Repeat("t", 151)))
}

func TestValidateNewsContent(t *testing.T) {
	assert.Error(t, ValidateNewsContent("too short"), "9 chars is below the minimum")
	assert.NoError(t, ValidateNewsContent("long enough content"))
	assert.NoError(t, ValidateNewsContent(strings.Repeat("c", 5000)))
	assert.Error(t, ValidateNewsContent(strings.Repeat("c", 5001)))
}

func TestValidateImage(t *testing.T) {
	const mb = 1024 * 1024

	tests := []struct {
		name    string
		size    int64
		mime    string
		wantErr bool
	}{
		{"SmallPNG", 1 * mb, "image/png", false},
		{"ExactCapJPEG", 2 * mb, "image/jpeg", false},
		{"SVG", 100, "image/svg+xml", false},
		{"GIF", 100, "image/gif", false},
		{"OversizedPNG", 3 * mb, "image/png", true},
		{"OversizedBadMime", 3 * mb, "image/bmp", true},
		{"BMP", 1 * mb, "image/bmp", true},
		{"TextFile", 100, "text/plain", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.size, tt.mime)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
