package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "a@x.com",
		"password": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", decodeBody(t, w)["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "bob", "email": "a@x.com", "password": "p2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "b@x.com", "password": "p2",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already taken", decodeBody(t, w)["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestRegisterInvalidRole(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1", "role": "overlord",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid role", decodeBody(t, w)["error"])
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, false, user["is_vip"])
	assert.NotContains(t, user, "password_hash")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice", "email": "a@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestLoginUnknownEmail(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "nobody@x.com", "password": "p1",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}
