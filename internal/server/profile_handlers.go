package server

import (
	"context"
	"time"

	"github.com/jaydeepbariya/master-backend-app/internal/models"
	"github.com/jaydeepbariya/master-backend-app/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// uploadTimeout bounds a single image-store call so a hung upload cannot
// hold the request forever.
const uploadTimeout = 15 * time.Second

// UpdateProfile handles PUT /api/v1/profile/:id
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Users may only change their own profile photo.
	if id != callerID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own profile"))
	}

	img, err := formImage(c, "profile")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if img == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			&models.AppError{Code: "IMAGE_REQUIRED", Message: "Image not provided"})
	}

	if verr := validation.ValidateImage(img.Size, img.ContentType); verr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			&models.AppError{Code: "IMAGE_INVALID", Message: verr.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), uploadTimeout)
	defer cancel()

	url, err := s.images.Upload(ctx, img.Filename, img.ContentType, img.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if err := s.userRepo.UpdateProfile(c.Context(), id, url); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated",
	})
}
