package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kmunity/internal/config"
	"kmunity/internal/middleware"
	"kmunity/internal/models"
	"kmunity/internal/store"
)

type requestInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	RequestType string  `json:"request_type" binding:"required"`
	Location    *string `json:"location"`
	Urgency     string  `json:"urgency"`
}

func CreateRequest(c *gin.Context) {
	var input requestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requestType, err := validateAndNormalizeRequestType(input.RequestType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	urgency, err := validateAndNormalizeUrgency(input.Urgency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.Request{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		RequestType: requestType,
		Status:      "pending",
		Location:    input.Location,
		Urgency:     urgency,
	}
	if err := store.CreateRequest(config.DB, &request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Request created successfully"})
}

func GetRequests(c *gin.Context) {
	requests, err := store.ListRequests(config.DB, c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list requests"})
		return
	}

	response := make([]gin.H, 0, len(requests))
	for _, req := range requests {
		response = append(response, gin.H{
			"id":           req.ID,
			"title":        req.Title,
			"description":  req.Description,
			"request_type": req.RequestType,
			"status":       req.Status,
			"location":     req.Location,
			"urgency":      req.Urgency,
			"created_at":   req.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

func validateAndNormalizeRequestType(input string) (string, error) {
	requestType := strings.ToLower(strings.TrimSpace(input))
	switch requestType {
	case "food_aid", "safety_alert", "volunteer", "mentorship", "elderly_assistance":
		return requestType, nil
	default:
		return "", errors.New("invalid request_type")
	}
}

func validateAndNormalizeUrgency(urgencyInput string) (string, error) {
	urgency := strings.ToLower(strings.TrimSpace(urgencyInput))
	if urgency == "" {
		urgency = "normal"
	}
	switch urgency {
	case "low", "normal", "high", "urgent":
		return urgency, nil
	default:
		return "", errors.New("invalid urgency")
	}
}
