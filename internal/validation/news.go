package validation

import (
	"fmt"
)

const (
	titleMinLength   = 5
	titleMaxLength   = 150
	contentMinLength = 10
	contentMaxLength = 5000
)

// ValidateNewsTitle enforces the article title bounds.
func ValidateNewsTitle(title string) error {
	if len(title) < titleMinLength {
		return fmt.Errorf("title must be at least %d characters long", titleMinLength)
	}
	if len(title) > titleMaxLength {
		return fmt.Errorf("title must not exceed %d characters", titleMaxLength)
	}
	return nil
}

// ValidateNewsContent enforces the article content bounds.
func ValidateNewsContent(content string) error {
	if len(content) < contentMinLength {
		return fmt.Errorf("content must be at least %d characters long", contentMinLength)
	}
	if len(content) > contentMaxLength {
		return fmt.Errorf("content must not exceed %d characters", contentMaxLength)
	}
	return nil
}
