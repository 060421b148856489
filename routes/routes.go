package routes

import (
	"restaurant-api/config"
	"restaurant-api/handlers"
	"restaurant-api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers every route with its guard chain. Guard coverage is a
// declarative policy per resource/action: the historically-open mutation
// routes default to auth+admin and are only opened by explicit config.
func Setup(r *gin.Engine, h *handlers.Handler, guard *middleware.Guard, cfg *config.Config) {
	auth := guard.RequireAuth()
	admin := guard.RequireAdmin()

	// chain prepends auth+admin unless the route is explicitly opened.
	chain := func(openRoute bool, handler gin.HandlerFunc) []gin.HandlerFunc {
		if openRoute {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{auth, admin, handler}
	}

	// Token
	r.POST("/jwt", h.IssueToken)

	// Users
	r.GET("/users", auth, admin, h.ListUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/users/admin/:email", auth, h.GetAdminStatus)
	r.DELETE("/users/:id", chain(cfg.AllowOpenUserMutations, h.DeleteUser)...)
	r.PATCH("/users/admin/:id", chain(cfg.AllowOpenUserMutations, h.PromoteUser)...)

	// Menu
	r.GET("/menu", h.ListMenu)
	r.GET("/menu/:id", h.GetMenuItem)
	r.POST("/menu", auth, admin, h.CreateMenuItem)
	r.PATCH("/menu/:id", chain(cfg.AllowOpenMenuUpdates, h.UpdateMenuItem)...)
	r.DELETE("/menu/:id", auth, admin, h.DeleteMenuItem)

	// Carts
	r.GET("/carts", auth, h.ListCartItems)
	r.POST("/carts", h.AddCartItem)
	r.DELETE("/carts/:id", h.RemoveCartItem)

	// Payments
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/payments", h.RecordPayment)
	r.GET("/payments/:email", auth, h.ListPayments)
}
