package handlers

import (
	"context"
	"errors"
	"net/http"

	"restaurant-api/gateway"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler carries the injected dependencies shared by every route handler.
type Handler struct {
	Store   store.Store
	Tokens  *middleware.TokenService
	Gateway gateway.IntentCreator
}

func New(s store.Store, tokens *middleware.TokenService, gw gateway.IntentCreator) *Handler {
	return &Handler{Store: s, Tokens: tokens, Gateway: gw}
}

// AdminCheck adapts the store into the user-lookup capability the guard
// middleware needs.
func (h *Handler) AdminCheck() middleware.AdminCheck {
	return func(ctx context.Context, email string) (bool, error) {
		user, err := h.Store.FindOne(ctx, store.Users, bson.M{"email": email})
		if err != nil {
			return false, err
		}
		return user != nil && user["role"] == string(models.RoleAdmin), nil
	}
}

// idFilter parses a strict ObjectID path parameter, writing the 400 response
// itself when the id is malformed.
func idFilter(c *gin.Context, id string) (bson.M, bool) {
	filter, err := store.ByID(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + id})
		return nil, false
	}
	return filter, true
}

func storageError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "storage operation failed"})
}
