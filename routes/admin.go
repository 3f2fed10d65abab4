package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	admincontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/admin"
	ordercontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/order"
	productcontroller "github.com/JeevanevasRK/Fashion-By-Nira-sub000/controllers/product"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires the JWT
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		// ─────────── Admin Management ───────────
		adminGroup.GET("/admins", admincontroller.GetAllAdmins(db))
		adminGroup.POST("/admins", admincontroller.CreateAdmin(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", ordercontroller.DeleteOrderHandler(db))
		}
	}
}
