package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/Shubrajit22/Zestwear-sub000/controllers/admin"
	cartControllers "github.com/Shubrajit22/Zestwear-sub000/controllers/cart"
	orderControllers "github.com/Shubrajit22/Zestwear-sub000/controllers/order"
	productcontroller "github.com/Shubrajit22/Zestwear-sub000/controllers/product"
	reviewController "github.com/Shubrajit22/Zestwear-sub000/controllers/review"
	userController "github.com/Shubrajit22/Zestwear-sub000/controllers/user"
	"github.com/Shubrajit22/Zestwear-sub000/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Every route checks
// the caller's admin flag against the database.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(deps.DB))
	{
		adminGroup.GET("/users", userController.GetAllUsers(deps.DB))
		adminGroup.GET("/admins", userController.GetAllAdmins(deps.DB))
		adminGroup.PATCH("/users/:id/admin", userController.SetAdmin(deps.DB))
		adminGroup.DELETE("/users/:id", userController.DeleteUser(deps.DB))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.POST("/:id/stock-images", productcontroller.AddStockImage(deps.DB))
			productAdmin.DELETE("/stock-images/:imageID", productcontroller.DeleteStockImage(deps.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(deps.Orders))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(deps.Orders))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByID(deps.Orders))
			orderAdmin.PATCH("/:orderID/shipping-status", orderControllers.UpdateShippingStatus(deps.Orders))
		}

		returnAdmin := adminGroup.Group("/returns")
		{
			returnAdmin.GET("", orderControllers.ListReturns(deps.Returns))
			returnAdmin.POST("/:returnID/approve", orderControllers.ApproveReturn(deps.Returns))
			returnAdmin.POST("/:returnID/reject", orderControllers.RejectReturn(deps.Returns))
			returnAdmin.POST("/:returnID/refund", orderControllers.RefundReturn(deps.Returns))
		}

		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.GET("", reviewController.GetAllReviews(deps.DB))
			reviewAdmin.DELETE("/:id", reviewController.DeleteReview(deps.DB))
		}

		uploadAdmin := adminGroup.Group("/uploads")
		{
			uploadAdmin.POST("", adminController.UploadFile(deps.DB))
			uploadAdmin.GET("", adminController.GetUploads(deps.DB))
			uploadAdmin.DELETE("/:id", adminController.DeleteUpload(deps.DB))
		}

		adminGroup.GET("/user-cart/:user_id", cartControllers.GetUserCartAdmin(deps.Cart))
	}
}
