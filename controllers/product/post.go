package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
)

type ProductInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	InStock     *bool    `json:"in_stock"`
	Images      []string `json:"images"`
}

// CreateProduct adds a catalog entry. Images arrive as hosted URLs; the
// image proxy/CDN is outside this service. POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			InStock:     true,
		}
		if input.InStock != nil {
			product.InStock = *input.InStock
		}
		for i, url := range input.Images {
			product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
