package ordercontroller

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/notify"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	ShippingAddress string           `json:"shipping_address" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	// TotalAmount arrives computed by the client and is stored as sent.
	// Mismatches against our own arithmetic are logged, not rejected; see
	// DESIGN.md on the price-trust gap.
	TotalAmount float64 `json:"total_amount"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder creates a guest order, deducting stock under row locks so
// concurrent checkouts cannot oversell.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, errors.New("order has no items")
	}

	order := models.Order{
		OrderRef:        generateOrderRef(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     req.TotalAmount,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var serverTotal float64

		for _, item := range req.Items {
			id, err := strconv.ParseUint(item.ProductID, 10, 64)
			if err != nil {
				return errors.New("invalid product id: " + item.ProductID)
			}

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", uint(id)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.New("product does not exist: " + item.ProductID)
				}
				return err
			}

			if !product.InStock {
				return errors.New("product out of stock: " + product.Title)
			}
			if product.Stock != nil {
				if *product.Stock < item.Quantity {
					return errors.New("insufficient stock for product: " + product.Title)
				}
				remaining := *product.Stock - item.Quantity
				product.Stock = &remaining
				if remaining == 0 {
					product.InStock = false
				}
				if err := tx.Save(&product).Error; err != nil {
					return err
				}
			}

			serverTotal += product.Price * float64(item.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Title:     product.Title,
				UnitPrice: product.Price,
				Quantity:  item.Quantity,
			})
		}

		if math.Abs(serverTotal-req.TotalAmount) > 0.01 {
			log.Printf("⚠️ Order %s: client total %.2f differs from catalog total %.2f",
				order.OrderRef, req.TotalAmount, serverTotal)
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// FetchOrdersByPhone returns a customer's orders newest first.
func FetchOrdersByPhone(db *gorm.DB, phone string) ([]models.Order, error) {
	var orders []models.Order
	err := db.
		Preload("Items").
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus moves an order to a new status. Transition legality is
// the admin's call; only the status vocabulary is validated.
func UpdateOrderStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// -------- Handlers --------

// PlaceOrderHandler places a guest order, pings the messaging provider and
// pushes the order onto the admin live feed. POST /orders/place
func PlaceOrderHandler(db *gorm.DB, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if notifier != nil {
			if err := notifier.OrderPlaced(order); err != nil {
				log.Printf("❌ Order notification failed for %s: %v", order.OrderRef, err)
			}
		}
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_id":  order.ID,
			"order_ref": order.OrderRef,
		})
	}
}

// TrackOrdersHandler is the public order lookup by phone number.
// GET /orders/track/:phone
func TrackOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Param("phone")
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
			return
		}

		orders, err := FetchOrdersByPhone(db, phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetAllOrdersHandler lists every order for the dashboard. GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatusHandler moves an order along the fulfilment sequence.
// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateOrderStatus(db, orderID, newStatus); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DeleteOrderHandler removes an order and its items. DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
