package server

import (
	"context"
	"math"

	"github.com/jaydeepbariya/master-backend-app/internal/models"
	"github.com/jaydeepbariya/master-backend-app/internal/validation"

	"github.com/gofiber/fiber/v2"
)

func isNotFound(err error) bool {
	appErr, ok := err.(*models.AppError)
	return ok && appErr.Code == "NOT_FOUND"
}

// CreateNews handles POST /api/v1/news
func (s *Server) CreateNews(c *fiber.Ctx) error {
	userID := callerID(c)

	title := c.FormValue("title")
	content := c.FormValue("content")

	if err := validation.ValidateNewsTitle(title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateNewsContent(content); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	img, err := formImage(c, "image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if img == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			&models.AppError{Code: "IMAGE_REQUIRED", Message: "Image required"})
	}
	if verr := validation.ValidateImage(img.Size, img.ContentType); verr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			&models.AppError{Code: "IMAGE_INVALID", Message: verr.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), uploadTimeout)
	defer cancel()

	imageURL, err := s.images.Upload(ctx, img.Filename, img.ContentType, img.Content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	news := &models.News{
		Title:   title,
		Content: content,
		Image:   imageURL,
		UserID:  userID,
	}
	if err := s.newsRepo.Create(c.Context(), news); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "News Created",
		"news":    news,
	})
}

// GetAllNews handles GET /api/v1/news
func (s *Server) GetAllNews(c *fiber.Ctx) error {
	listing := parseListing(c)

	news, err := s.newsRepo.List(c.Context(), listing.Limit, listing.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	totalNews, err := s.newsRepo.Count(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	metadata := models.NewsPageMetadata{
		TotalNews:    totalNews,
		TotalPages:   int(math.Ceil(float64(totalNews) / float64(listing.Limit))),
		CurrentPage:  listing.Page,
		CurrentLimit: listing.Limit,
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "News Fetched",
		"metadata": metadata,
		"news":     news,
	})
}

// GetNews handles GET /api/v1/news/:id
func (s *Server) GetNews(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	news, err := s.newsRepo.GetByID(c.Context(), id)
	if err != nil {
		if isNotFound(err) {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "News Fetched",
		"news":    news,
	})
}

// UpdateNews handles PUT /api/v1/news/:id
func (s *Server) UpdateNews(c *fiber.Ctx) error {
	userID := callerID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	// Existence is checked before ownership so a missing article is a clean
	// 404 rather than a nil dereference.
	news, err := s.newsRepo.GetByID(c.Context(), id)
	if err != nil {
		if isNotFound(err) {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if news.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You cannot update this news"))
	}

	// Missing fields fall back to the current values. Text fields are
	// validated before the image goes anywhere so a bad title cannot
	// orphan an uploaded object.
	if title := c.FormValue("title"); title != "" {
		if verr := validation.ValidateNewsTitle(title); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(verr.Error()))
		}
		news.Title = title
	}
	if content := c.FormValue("content"); content != "" {
		if verr := validation.ValidateNewsContent(content); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(verr.Error()))
		}
		news.Content = content
	}

	if img, ferr := formImage(c, "image"); ferr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, ferr)
	} else if img != nil {
		if verr := validation.ValidateImage(img.Size, img.ContentType); verr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				&models.AppError{Code: "IMAGE_INVALID", Message: verr.Error()})
		}

		ctx, cancel := context.WithTimeout(c.Context(), uploadTimeout)
		defer cancel()

		imageURL, uerr := s.images.Upload(ctx, img.Filename, img.ContentType, img.Content)
		if uerr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(uerr))
		}
		news.Image = imageURL
	}

	if err := s.newsRepo.Update(c.Context(), news); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "News Updated",
		"news":    news,
	})
}

// DeleteNews handles DELETE /api/v1/news/:id
func (s *Server) DeleteNews(c *fiber.Ctx) error {
	userID := callerID(c)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	news, err := s.newsRepo.GetByID(c.Context(), id)
	if err != nil {
		if isNotFound(err) {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if news.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You cannot delete this news"))
	}

	if err := s.newsRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "News Deleted",
	})
}
