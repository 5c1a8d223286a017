package validation

import (
	"fmt"
)

// MaxImageSizeBytes is the upload cap for article and profile images.
const MaxImageSizeBytes = 2 * 1024 * 1024

var supportedImageMimes = map[string]struct{}{
	"image/png":     {},
	"image/jpg":     {},
	"image/jpeg":    {},
	"image/svg+xml": {},
	"image/gif":     {},
}

// ValidateImage checks an uploaded image against the size and mime policy.
// Size is checked first so an oversized file is rejected regardless of type.
func ValidateImage(size int64, mime string) error {
	if size > MaxImageSizeBytes {
		return fmt.Errorf("image size must be less than 2 MB")
	}
	if _, ok := supportedImageMimes[mime]; !ok {
		return fmt.Errorf("image must be type of png,jpg,jpeg,svg,gif")
	}
	return nil
}
