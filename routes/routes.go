package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/invoice"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/notify"
)

// SetupRoutes is the single entry point that wires up the Auth, Shop and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	notifier := notify.FromEnv()
	renderer := invoice.NewRenderer()

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront routes
	SetupShopRoutes(r, db, notifier, renderer)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, db)
}
