package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/Shubrajit22/Zestwear-sub000/controllers/product"
	reviewController "github.com/Shubrajit22/Zestwear-sub000/controllers/review"
)

// SetupPublicRoutes registers catalog browsing. No auth required.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productcontroller.GetProducts(deps.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
	r.GET("/products/:id/reviews", reviewController.GetProductReviews(deps.DB))
	r.GET("/categories", productcontroller.GetAllCategories(deps.DB))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(deps.DB))
}
