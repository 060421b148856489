package handlers

import (
	"net/http"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// IssueToken signs an access token for the posted identity. The frontend
// calls this right after its own sign-in flow completes.
func (h *Handler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListUsers returns every user record. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.FindAll(c.Request.Context(), store.Users)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser inserts a user on first sign-in. Email uniqueness is enforced
// by lookup-before-insert, not by a database constraint.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.FindOne(c.Request.Context(), store.Users, bson.M{"email": user.Email})
	if err != nil {
		storageError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exist", "insertedId": nil})
		return
	}

	result, err := h.Store.InsertOne(c.Request.Context(), store.Users, user)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAdminStatus reports whether the given email holds the admin role. The
// path email must match the caller's own; this is an ownership check, not a
// role check.
func (h *Handler) GetAdminStatus(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.Email(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	user, err := h.Store.FindOne(c.Request.Context(), store.Users, bson.M{"email": email})
	if err != nil {
		storageError(c, err)
		return
	}
	admin := user != nil && user["role"] == string(models.RoleAdmin)
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// DeleteUser removes a user by id.
func (h *Handler) DeleteUser(c *gin.Context) {
	filter, ok := idFilter(c, c.Param("id"))
	if !ok {
		return
	}
	result, err := h.Store.DeleteOne(c.Request.Context(), store.Users, filter)
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteUser sets role=admin on a user by id.
func (h *Handler) PromoteUser(c *gin.Context) {
	filter, ok := idFilter(c, c.Param("id"))
	if !ok {
		return
	}
	result, err := h.Store.UpdateOne(c.Request.Context(), store.Users, filter,
		bson.M{"role": string(models.RoleAdmin)})
	if err != nil {
		storageError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
