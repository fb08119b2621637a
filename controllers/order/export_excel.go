package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
)

// ExportOrdersToExcel streams all orders as an .xlsx download for offline
// payment reconciliation.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderNumber", "UserID", "Total", "AdvancePaid", "Remaining",
			"Status", "Phone", "UTRNumber", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.AdvancePaid)
			row.AddCell().SetValue(o.RemainingAmount)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.UTRNumber)
			row.AddCell().SetValue(len(o.Items))
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
