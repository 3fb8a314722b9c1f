package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/auth"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

// Deps carries everything the route groups need. main builds it once.
type Deps struct {
	DB       *gorm.DB
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Orders   *services.OrderService
	Returns  *services.ReturnService
	OTP      *auth.OTPStore
	Mail     services.Mailer
}

// SetupRoutes wires up the public, user and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)
	SetupPublicRoutes(r, deps)
	SetupUserRoutes(r, deps)
	SetupAdminRoutes(r, deps)
	SetupOrderRoutes(r, deps)
}
