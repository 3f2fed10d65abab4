package invoicecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/invoice"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

// GetOrderInvoice renders an order's invoice as a download, either a PNG
// (format=image) or a spreadsheet (format=document, the default).
// GET /orders/:orderID/invoice?format=document
func GetOrderInvoice(db *gorm.DB, renderer *invoice.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? OR order_ref = ?", orderID, orderID).
			First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		format := invoice.Format(c.DefaultQuery("format", string(invoice.FormatDocument)))
		artifact, err := renderer.Render(order, format)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", "attachment; filename="+artifact.FileName)
		c.Data(http.StatusOK, artifact.MIME, artifact.Data)
	}
}
