package server

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/jaydeepbariya/master-backend-app/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultListingLimit = 1
	fallbackLimit       = 2
	maxListingLimit     = 10
)

// Listing holds the parsed page/limit query parameters and the derived offset.
type Listing struct {
	Page   int
	Limit  int
	Offset int
}

// parseListing extracts page and limit query parameters. Page is clamped to
// >=1; a limit outside (0,10] is reset to the fallback of 2.
func parseListing(c *fiber.Ctx) Listing {
	page := c.QueryInt("page", 1)
	if page <= 0 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultListingLimit)
	if limit <= 0 || limit > maxListingLimit {
		limit = fallbackLimit
	}

	return Listing{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// callerID returns the authenticated user's id set by AuthRequired.
func callerID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// uploadedImage is an in-memory copy of a multipart image upload.
type uploadedImage struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// formImage reads the named multipart file. It returns (nil, nil) when the
// field is absent so callers decide whether the image is required.
func formImage(c *fiber.Ctx, field string) (*uploadedImage, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readImageHeader(header)
}

func readImageHeader(header *multipart.FileHeader) (*uploadedImage, error) {
	f, err := header.Open()
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &uploadedImage{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}, nil
}
