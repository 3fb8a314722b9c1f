package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Shubrajit22/Zestwear-sub000/controllers/cart"
	orderControllers "github.com/Shubrajit22/Zestwear-sub000/controllers/order"
	reviewController "github.com/Shubrajit22/Zestwear-sub000/controllers/review"
	userController "github.com/Shubrajit22/Zestwear-sub000/controllers/user"
	"github.com/Shubrajit22/Zestwear-sub000/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. JWT protected.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireUser())
	{
		userGroup.GET("/profile", userController.GetProfile(deps.DB))
		userGroup.PUT("/profile", userController.UpdateProfile(deps.DB))

		userGroup.GET("/addresses", userController.GetAddresses(deps.DB))
		userGroup.POST("/addresses", userController.AddAddress(deps.DB))
		userGroup.DELETE("/addresses/:id", userController.DeleteAddress(deps.DB))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))
			cartGroup.POST("", cartControllers.AddItem(deps.Cart))
			cartGroup.PATCH("/:itemID", cartControllers.UpdateQuantity(deps.Cart))
			cartGroup.DELETE("/:itemID", cartControllers.RemoveItem(deps.Cart))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))
		}

		userGroup.GET("/orders", orderControllers.GetMyOrders(deps.Orders))
		userGroup.GET("/orders/:orderID", orderControllers.GetMyOrder(deps.Orders))
		userGroup.POST("/orders/:orderID/cancel", orderControllers.CancelOrder(deps.Orders))

		userGroup.POST("/returns", orderControllers.RequestReturn(deps.Returns))

		userGroup.POST("/reviews", reviewController.CreateReview(deps.DB))
	}
}
