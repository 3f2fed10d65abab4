package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	invoicecontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/invoice"
	ordercontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/order"
	productcontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/product"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/invoice"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/notify"
)

// SetupShopRoutes registers the public storefront endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, notifier *notify.Notifier, renderer *invoice.Renderer) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// ──────────────── Orders ────────────────
	orders := r.Group("/orders")
	{
		orders.POST("/place", ordercontroller.PlaceOrderHandler(db, notifier))

		// websocket endpoint for real-time order updates on the dashboard
		orders.GET("/ws", ordercontroller.OrderWebSocketHandler)
		orders.GET("/track/:phone", ordercontroller.TrackOrdersHandler(db))
		orders.GET("/:orderID/invoice", invoicecontroller.GetOrderInvoice(db, renderer))
	}
}
