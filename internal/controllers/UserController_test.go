package controllers

import (
	"dsatrack/internal/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndMe(t *testing.T) {
	e := newEnv()

	rr := httptest.NewRecorder()
	e.users.Create(rr, request(http.MethodPost, "/users", "", `{"name":"Grace"}`))
	require.Equal(t, http.StatusCreated, rr.Code)
	var u models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &u))
	assert.NotEmpty(t, u.ID)

	rr = httptest.NewRecorder()
	e.users.Me(rr, request(http.MethodGet, "/users/me", u.ID, ""))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	e.users.Me(rr, request(http.MethodGet, "/users/me", "ghost", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserCreateValidation(t *testing.T) {
	e := newEnv()
	rr := httptest.NewRecorder()
	e.users.Create(rr, request(http.MethodPost, "/users", "", `{"name":""}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
