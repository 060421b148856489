package handlers

import (
	"net/http"

	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListCartItems returns the cart rows belonging to the email in the query
// string.
func (h *Handler) ListCartItems(c *gin.Context) {
	email := c.Query("email")
	items, err := h.Store.FindMany(c.Request.Context(), store.Carts, bson.M{"email": email})
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddCartItem inserts one cart row. Adding the same menu item again creates
// another row.
func (h *Handler) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Store.InsertOne(c.Request.Context(), store.Carts, item)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveCartItem deletes one cart row by id.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	filter, ok := idFilter(c, c.Param("id"))
	if !ok {
		return
	}
	result, err := h.Store.DeleteOne(c.Request.Context(), store.Carts, filter)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
