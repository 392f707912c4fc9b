package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kmunity/internal/config"
	"kmunity/internal/middleware"
	"kmunity/internal/models"
	"kmunity/internal/payment"
	"kmunity/internal/store"
)

// PaymentGateway is assigned at startup (Stripe in production, a stub in
// tests).
var PaymentGateway payment.Gateway

type donationInput struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	Purpose         *string `json:"purpose"`
	IsRecurring     bool    `json:"is_recurring"`
}

func CreateDonation(c *gin.Context) {
	var input donationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// Charge first; the donation row only exists once the processor
	// has confirmed.
	confirmation, err := PaymentGateway.Charge(c.Request.Context(), input.Amount, input.PaymentMethodID)
	if err != nil {
		var declined *payment.CardDeclinedError
		if errors.As(err, &declined) {
			logrus.WithFields(logrus.Fields{"user_id": userID, "amount": input.Amount}).Warn("card declined")
			c.JSON(http.StatusBadRequest, gin.H{"error": declined.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment failed"})
		return
	}

	donation := models.Donation{
		UserID:        userID,
		Amount:        input.Amount,
		Purpose:       input.Purpose,
		IsRecurring:   input.IsRecurring,
		PaymentMethod: "stripe",
		PaymentStatus: "completed",
	}
	if err := store.CreateDonation(config.DB, &donation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Donation processed successfully",
		"payment_intent": confirmation,
	})
}
