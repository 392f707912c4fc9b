package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kmunity/internal/config"
	"kmunity/internal/middleware"
	"kmunity/internal/models"
	"kmunity/internal/store"
)

type eventInput struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	EventType       string  `json:"event_type" binding:"required"`
	Location        *string `json:"location"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	MaxParticipants *int    `json:"max_participants"`
}

func CreateEvent(c *gin.Context) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	organizerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eventType, err := validateAndNormalizeEventType(input.EventType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startTime, err := parseEventTime(input.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time"})
		return
	}
	endTime, err := parseEventTime(input.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_time"})
		return
	}
	if endTime.Before(startTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must not be before start_time"})
		return
	}

	event := models.Event{
		OrganizerID:     organizerID,
		Title:           input.Title,
		Description:     input.Description,
		EventType:       eventType,
		Location:        input.Location,
		StartTime:       startTime,
		EndTime:         endTime,
		MaxParticipants: input.MaxParticipants,
		Status:          "upcoming",
	}
	if err := store.CreateEvent(config.DB, &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully"})
}

func GetEvents(c *gin.Context) {
	events, err := store.ListEvents(config.DB, c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list events"})
		return
	}

	response := make([]gin.H, 0, len(events))
	for _, event := range events {
		response = append(response, gin.H{
			"id":                   event.ID,
			"title":                event.Title,
			"description":          event.Description,
			"event_type":           event.EventType,
			"location":             event.Location,
			"start_time":           event.StartTime,
			"end_time":             event.EndTime,
			"max_participants":     event.MaxParticipants,
			"current_participants": event.CurrentParticipants,
			"status":               event.Status,
		})
	}

	c.JSON(http.StatusOK, response)
}

func validateAndNormalizeEventType(input string) (string, error) {
	eventType := strings.ToLower(strings.TrimSpace(input))
	switch eventType {
	case "mentorship", "volunteer", "community":
		return eventType, nil
	default:
		return "", errors.New("invalid event_type")
	}
}

// parseEventTime accepts RFC3339 or a bare ISO-8601 timestamp without a
// zone offset; the latter is what most clients send.
func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
