package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// UpdateProduct applies a partial multipart update. Size options, when
// present, replace the existing set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("mrp"); v != "" {
			mrp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
			product.MRP = mrp
		}
		if v := c.PostForm("discount"); v != "" {
			d, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
			product.Discount = d
		}
		if v := c.PostForm("type"); v != "" {
			product.Type = models.ProductType(v)
		}
		for field, dst := range map[string]*string{
			"state":       &product.State,
			"district":    &product.District,
			"institution": &product.Institution,
			"color":       &product.Color,
			"texture":     &product.Texture,
			"neckline":    &product.Neckline,
		} {
			if v := c.PostForm(field); v != "" {
				*dst = v
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			catID, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.ProductCategory
			if err := db.First(&category, "id = ?", catID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			cid := uint(catID)
			product.CategoryID = &cid
		}

		if url, err := saveImage(c, "image", "products"); err == nil {
			removeImageFile(product.ImageURL, "products")
			product.ImageURL = url
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if v := c.PostForm("size_options"); v != "" {
				var inputs []sizeOptionInput
				if err := json.Unmarshal([]byte(v), &inputs); err != nil {
					return err
				}
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.SizeOption{}).Error; err != nil {
					return err
				}
				for _, in := range inputs {
					if err := tx.Create(&models.SizeOption{
						ProductID: product.ID,
						Size:      in.Size,
						Price:     in.Price,
					}).Error; err != nil {
						return err
					}
				}
			}
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		db.Preload("SizeOptions").Preload("StockImages").First(&product, product.ID)
		c.JSON(http.StatusOK, product)
	}
}
