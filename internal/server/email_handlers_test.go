package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNewsMail(t *testing.T) {
	s, app, _, mail := newTestServer(t)
	s.config.MailTo = "digest@example.com"

	user := createTestUser(t, s, "Author", "author@example.com")
	createTestNews(t, s, user, "First headline")
	createTestNews(t, s, user, "Second headline")

	req := jsonRequest(t, http.MethodPost, "/api/v1/send-email", nil)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mail Sent", decodeBody(t, resp)["message"])

	require.Len(t, mail.Messages, 1)
	msg := mail.Messages[0]
	assert.Equal(t, "digest@example.com", msg.To)
	assert.Equal(t, "News Today", msg.Subject)
	assert.Contains(t, msg.Body, "News Today")
	assert.Contains(t, msg.Body, "First headline")
	assert.Contains(t, msg.Body, "Second headline")
	assert.Contains(t, msg.Body, "by Author")
}

func TestSendNewsMailFallsBackToMailUser(t *testing.T) {
	s, app, _, mail := newTestServer(t)
	s.config.MailUser = "sender@example.com"

	user := createTestUser(t, s, "Author", "author@example.com")

	req := jsonRequest(t, http.MethodPost, "/api/v1/send-email", nil)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, mail.Messages, 1)
	assert.Equal(t, "sender@example.com", mail.Messages[0].To)
}

func TestSendNewsMailRequiresAuth(t *testing.T) {
	_, app, _, mail := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/send-email", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, mail.Messages)
}

func TestSendNewsMailRelayFailure(t *testing.T) {
	s, app, _, mail := newTestServer(t)
	mail.Err = assert.AnError

	user := createTestUser(t, s, "Author", "author@example.com")

	req := jsonRequest(t, http.MethodPost, "/api/v1/send-email", nil)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Something went wrong", decodeBody(t, resp)["message"])
}
