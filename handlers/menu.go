package handlers

import (
	"net/http"
	"strings"

	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListMenu returns the whole menu catalog.
func (h *Handler) ListMenu(c *gin.Context) {
	menu, err := h.Store.FindAll(c.Request.Context(), store.Menu)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// GetMenuItem looks up one menu item. Seeded documents carry raw-string ids
// while documents created through the API carry ObjectIDs, so the id is
// resolved to one of the two forms before querying. Absent → empty body.
func (h *Handler) GetMenuItem(c *gin.Context) {
	docID := store.ParseDocID(c.Param("id"))
	item, err := h.Store.FindOne(c.Request.Context(), store.Menu, docID.Filter())
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateMenuItem inserts a menu item. Admin only.
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.NormalizeCategory()

	result, err := h.Store.InsertOne(c.Request.Context(), store.Menu, item)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type UpdateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// UpdateMenuItem replaces the editable fields of a menu item. The category
// is stored lower-cased whatever the client sent.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	filter, ok := idFilter(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.UpdateOne(c.Request.Context(), store.Menu, filter, bson.M{
		"name":     req.Name,
		"recipe":   req.Recipe,
		"image":    req.Image,
		"category": strings.ToLower(req.Category),
		"price":    req.Price,
	})
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteMenuItem removes a menu item by id. Admin only.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	filter, ok := idFilter(c, c.Param("id"))
	if !ok {
		return
	}
	result, err := h.Store.DeleteOne(c.Request.Context(), store.Menu, filter)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
