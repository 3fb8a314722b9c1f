package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// GetProductByID returns one product with sizes, images, reviews and the
// average rating computed on read.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.
			Preload("SizeOptions").
			Preload("StockImages").
			Preload("Reviews").
			Preload("Reviews.User").
			First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var avg float64
		db.Model(&models.Review{}).
			Where("product_id = ?", product.ID).
			Select("COALESCE(AVG(rating), 0)").
			Scan(&avg)

		c.JSON(http.StatusOK, gin.H{"product": product, "average_rating": avg})
	}
}
