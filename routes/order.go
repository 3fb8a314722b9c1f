package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Shubrajit22/Zestwear-sub000/controllers/order"
	"github.com/Shubrajit22/Zestwear-sub000/middleware"
)

// SetupOrderRoutes registers checkout, payment confirmation and the
// websocket feed for live order updates.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireUser())
	{
		orders.POST("/checkout", orderControllers.Checkout(deps.Checkout))
		orders.POST("/confirm", orderControllers.ConfirmPayment(deps.Orders))
	}

	// Order events carry customer details, so the feed is admin-only; the
	// token rides in the query string since upgrades cannot set headers.
	r.GET("/ws/orders", middleware.RequireAdminWS(deps.DB), orderControllers.OrderFeed)
}
