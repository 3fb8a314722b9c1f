package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// GetProducts lists the catalog with optional filters: category, type,
// uniform scoping (state/district/institution) and a name search.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Product{}).
			Preload("SizeOptions").
			Preload("StockImages")

		if v := c.Query("category_id"); v != "" {
			q = q.Where("category_id = ?", v)
		}
		if v := c.Query("type"); v != "" {
			q = q.Where("type = ?", v)
		}
		if v := c.Query("state"); v != "" {
			q = q.Where("state = ?", v)
		}
		if v := c.Query("district"); v != "" {
			q = q.Where("district = ?", v)
		}
		if v := c.Query("institution"); v != "" {
			q = q.Where("institution = ?", v)
		}
		if v := c.Query("q"); v != "" {
			q = q.Where("name ILIKE ?", "%"+v+"%")
		}

		limit := 50
		if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
			limit = v
		}
		offset := 0
		if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
			offset = v
		}

		var products []models.Product
		if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
