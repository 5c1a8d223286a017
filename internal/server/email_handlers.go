package server

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/jaydeepbariya/master-backend-app/internal/models"

	"github.com/gofiber/fiber/v2"
)

const digestQueryTimeout = 10 * time.Second

var digestTemplate = template.Must(template.New("digest").Parse(`<h1>News Today</h1>
{{range .}}<div>
  <h2>{{.Title}}</h2>
  <p>{{.Content}}</p>
  <p><img src="{{.Image}}" alt="{{.Title}}" width="320"></p>
  <p>by {{.User.Name}}</p>
</div>
{{end}}`))

// SendNewsMail handles POST /api/v1/send-email. It renders every article into
// one HTML digest and sends it to the configured recipient.
func (s *Server) SendNewsMail(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), digestQueryTimeout)
	defer cancel()

	news, err := s.newsRepo.ListAll(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	var body strings.Builder
	if err := digestTemplate.Execute(&body, news); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	to := s.config.MailTo
	if to == "" {
		to = s.config.MailUser
	}

	if err := s.mail.Send(to, "News Today", body.String()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Mail Sent",
	})
}
