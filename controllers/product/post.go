package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

type sizeOptionInput struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// CreateProduct creates a product from a multipart form: scalar fields, an
// image upload and a JSON-encoded size_options field.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Type:        models.ProductType(c.DefaultPostForm("type", string(models.ProductTypeGeneric))),
			State:       c.PostForm("state"),
			District:    c.PostForm("district"),
			Institution: c.PostForm("institution"),
			Color:       c.PostForm("color"),
			Texture:     c.PostForm("texture"),
			Neckline:    c.PostForm("neckline"),
		}

		if v := c.PostForm("mrp"); v != "" {
			if mrp, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.MRP = mrp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mrp"})
				return
			}
		}
		if v := c.PostForm("discount"); v != "" {
			if d, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.Discount = d
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
				return
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			catID, parseErr := strconv.ParseUint(v, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.ProductCategory
			if err := db.First(&category, "id = ?", catID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			id := uint(catID)
			product.CategoryID = &id
		}

		if v := c.PostForm("size_options"); v != "" {
			var inputs []sizeOptionInput
			if err := json.Unmarshal([]byte(v), &inputs); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size_options format"})
				return
			}
			for _, in := range inputs {
				if in.Size == "" || in.Price <= 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Each size option needs a size and a positive price"})
					return
				}
				product.SizeOptions = append(product.SizeOptions, models.SizeOption{
					Size:  in.Size,
					Price: in.Price,
				})
			}
		}

		if url, err := saveImage(c, "image", "products"); err == nil {
			product.ImageURL = url
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// AddStockImage uploads an extra image for a product.
func AddStockImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		url, err := saveImage(c, "image", "products")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		image := models.StockImage{ProductID: product.ID, URL: url}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stock image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DeleteStockImage removes one stock image record and its file.
func DeleteStockImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("imageID")
		var image models.StockImage
		if err := db.First(&image, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock image not found"})
			return
		}
		removeImageFile(image.URL, "products")
		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stock image"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock image deleted"})
	}
}
