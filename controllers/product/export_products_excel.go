package productcontroller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// ExportProductsToExcel streams the full catalog as an xlsx download using
// the same column layout the importer accepts.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("SizeOptions").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "MRP", "Discount",
			"Type", "State", "District", "Institution",
			"Color", "Texture", "Neckline",
			"ImageURL", "CategoryID", "SizeOptions", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.MRP)
			row.AddCell().SetValue(p.Discount)
			row.AddCell().SetValue(string(p.Type))
			row.AddCell().SetValue(p.State)
			row.AddCell().SetValue(p.District)
			row.AddCell().SetValue(p.Institution)
			row.AddCell().SetValue(p.Color)
			row.AddCell().SetValue(p.Texture)
			row.AddCell().SetValue(p.Neckline)
			row.AddCell().SetValue(p.ImageURL)

			if p.CategoryID != nil {
				row.AddCell().SetValue(*p.CategoryID)
			} else {
				row.AddCell().SetValue("")
			}

			var sizes []string
			for _, opt := range p.SizeOptions {
				sizes = append(sizes, fmt.Sprintf("%s:%g", opt.Size, opt.Price))
			}
			row.AddCell().SetValue(strings.Join(sizes, ","))

			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
