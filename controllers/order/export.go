package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Shubrajit22/Zestwear-sub000/services"
)

// ExportOrdersToExcel streams all orders as an xlsx download, one row per
// order with items flattened into a single column.
func ExportOrdersToExcel(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := orders.Orders()
		if err != nil {
			fail(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserEmail", "UserName", "Address", "TotalAmount",
			"Status", "PaymentStatus", "ShippingStatus",
			"PaymentID", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range all {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(o.User.Name)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(string(o.ShippingStatus))
			row.AddCell().SetValue(o.PaymentID)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, fmt.Sprintf("%s (%s) x%d @ %.2f",
					item.ProductName, item.Size, item.Quantity, item.Price))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
