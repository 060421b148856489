package handlers

import (
	"log"
	"net/http"
	"time"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateIntentRequest struct {
	// Amount is in minor currency units (cents).
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the gateway for a charge intent and returns the
// client secret the frontend needs to complete the charge.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment stores a completed checkout and purges the purchased cart
// rows. The two writes are not one transaction: the payment is inserted with
// cartCleared=false and the flag is flipped only after the purge succeeds,
// so an interrupted checkout is detectable instead of silent.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reject malformed cart ids before any write happens.
	cartFilter, err := store.ByIDs(payment.CartIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	payment.CartCleared = false

	paymentResult, err := h.Store.InsertOne(c.Request.Context(), store.Payments, payment)
	if err != nil {
		storageError(c, err)
		return
	}

	deleteResult, err := h.Store.DeleteMany(c.Request.Context(), store.Carts, cartFilter)
	if err != nil {
		log.Printf("payment %v recorded but cart purge failed: %v", paymentResult.InsertedID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         "payment recorded but cart cleanup failed",
			"paymentResult": paymentResult,
		})
		return
	}

	if _, err := h.Store.UpdateOne(c.Request.Context(), store.Payments,
		bson.M{"_id": paymentResult.InsertedID}, bson.M{"cartCleared": true}); err != nil {
		// The cart rows are gone; only the marker is stale. Log and move on.
		log.Printf("payment %v: failed to mark cart cleared: %v", paymentResult.InsertedID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": paymentResult,
		"deleteResult":  deleteResult,
	})
}

// ListPayments returns the payment history for the path email, which must
// match the caller's own.
func (h *Handler) ListPayments(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.Email(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	payments, err := h.Store.FindMany(c.Request.Context(), store.Payments, bson.M{"email": email})
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
