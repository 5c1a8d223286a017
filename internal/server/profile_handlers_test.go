package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	s, app, images, _ := newTestServer(t)
	user := createTestUser(t, s, "Profile User", "profile@example.com")

	req := multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/profile/%d", user.ID),
		nil, "profile", "avatar.png", "image/png", tinyPNG)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Profile updated", decodeBody(t, resp)["message"])
	assert.Equal(t, []string{"avatar.png"}, images.Uploads)

	stored, err := s.userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Profile)
	assert.Contains(t, *stored.Profile, "avatar.png")
}

func TestUpdateProfileOnlyOwnAccount(t *testing.T) {
	s, app, images, _ := newTestServer(t)
	user := createTestUser(t, s, "Profile User", "profile@example.com")
	victim := createTestUser(t, s, "Victim", "victim@example.com")

	req := multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/profile/%d", victim.ID),
		nil, "profile", "avatar.png", "image/png", tinyPNG)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeBody(t, resp)["code"])
	assert.Empty(t, images.Uploads)

	stored, err := s.userRepo.GetByID(context.Background(), victim.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Profile, "victim's profile must be untouched")
}

func TestUpdateProfileMissingImage(t *testing.T) {
	s, app, _, _ := newTestServer(t)
	user := createTestUser(t, s, "Profile User", "profile@example.com")

	req := multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/profile/%d", user.ID),
		nil, "", "", "", nil)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "IMAGE_REQUIRED", body["code"])
	assert.Equal(t, "Image not provided", body["message"])
}

func TestUpdateProfileRejectsBadImage(t *testing.T) {
	s, app, _, _ := newTestServer(t)
	user := createTestUser(t, s, "Profile User", "profile@example.com")

	req := multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/profile/%d", user.ID),
		nil, "profile", "avatar.bmp", "image/bmp", tinyPNG)
	req.Header.Set("Authorization", bearerFor(t, s, user))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "IMAGE_INVALID", decodeBody(t, resp)["code"])
}
