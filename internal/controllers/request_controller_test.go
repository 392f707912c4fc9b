package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestWithoutToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/requests", "", gin.H{
		"title": "Need groceries", "description": "weekly shop", "request_type": "food_aid",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRequestThenList(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com", "p1")

	w := doJSON(t, r, http.MethodPost, "/api/requests", token, gin.H{
		"title":        "Need groceries",
		"description":  "weekly shop for an elderly neighbour",
		"request_type": "food_aid",
		"location":     "Block 4",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Request created successfully", decodeBody(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/requests", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Need groceries", list[0]["title"])
	assert.Equal(t, "food_aid", list[0]["request_type"])
	assert.Equal(t, "pending", list[0]["status"])
	assert.Equal(t, "normal", list[0]["urgency"])
	assert.Equal(t, "Block 4", list[0]["location"])
	assert.NotEmpty(t, list[0]["created_at"])
}

func TestCreateRequestWithoutLocation(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com", "p1")

	w := doJSON(t, r, http.MethodPost, "/api/requests", token, gin.H{
		"title": "t", "description": "d", "request_type": "food_aid",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/requests", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 1)
	// Unset optional fields serialize as null, not "".
	assert.Contains(t, list[0], "location")
	assert.Nil(t, list[0]["location"])
}

func TestListRequestsTypeFilter(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com", "p1")

	for _, rt := range []string{"food_aid", "safety_alert", "food_aid", "mentorship"} {
		w := doJSON(t, r, http.MethodPost, "/api/requests", token, gin.H{
			"title": "t", "description": "d", "request_type": rt,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/requests?type=food_aid", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 2)
	for _, row := range list {
		assert.Equal(t, "food_aid", row["request_type"])
	}
}

func TestCreateRequestInvalidType(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com", "p1")

	w := doJSON(t, r, http.MethodPost, "/api/requests", token, gin.H{
		"title": "t", "description": "d", "request_type": "time_travel",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request_type", decodeBody(t, w)["error"])
}

func TestCreateRequestMissingDescription(t *testing.T) {
	r, _ := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com", "p1")

	w := doJSON(t, r, http.MethodPost, "/api/requests", token, gin.H{
		"title": "t", "request_type": "food_aid",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}
