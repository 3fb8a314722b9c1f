package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// sheet. Column order:
// ID, Name, Description, Price, MRP, Discount, Type, State, District,
// Institution, Color, Texture, Neckline, ImageURL, CategoryID, SizeOptions.
// SizeOptions is "size:price" pairs joined by commas, e.g. "S:450,M:500".
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			price, priceErr := strconv.ParseFloat(get(3), 64)

			if name == "" || priceErr != nil {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: get(2),
				Price:       price,
				Type:        models.ProductType(get(6)),
				State:       get(7),
				District:    get(8),
				Institution: get(9),
				Color:       get(10),
				Texture:     get(11),
				Neckline:    get(12),
				ImageURL:    get(13),
			}
			if product.Type == "" {
				product.Type = models.ProductTypeGeneric
			}
			product.MRP, _ = strconv.ParseFloat(get(4), 64)
			product.Discount, _ = strconv.ParseFloat(get(5), 64)

			if v := get(14); v != "" {
				if catID, err := strconv.Atoi(v); err == nil {
					id := uint(catID)
					product.CategoryID = &id
				}
			}

			sizeOptions := parseSizeOptions(get(15))

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						product.CreatedAt = existing.CreatedAt
						err := db.Transaction(func(tx *gorm.DB) error {
							if len(sizeOptions) > 0 {
								if err := tx.Where("product_id = ?", existing.ID).Delete(&models.SizeOption{}).Error; err != nil {
									return err
								}
								for i := range sizeOptions {
									sizeOptions[i].ProductID = existing.ID
									if err := tx.Create(&sizeOptions[i]).Error; err != nil {
										return err
									}
								}
							}
							return tx.Save(&product).Error
						})
						if err == nil {
							updatedCount++
						} else {
							skippedCount++
						}
						continue
					}
				}
			}

			product.SizeOptions = sizeOptions
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func parseSizeOptions(raw string) []models.SizeOption {
	var opts []models.SizeOption
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || parts[0] == "" {
			continue
		}
		opts = append(opts, models.SizeOption{Size: parts[0], Price: price})
	}
	return opts
}
