package models

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	// Order statuses, in the sequence the shop moves them through.
	OrderStatusPending    OrderStatus = "Pending"        // Order placed, awaiting confirmation
	OrderStatusAccepted   OrderStatus = "Order Accepted" // Confirmed by the shop
	OrderStatusPacked     OrderStatus = "Packed"         // Packed and ready for dispatch
	OrderStatusDispatched OrderStatus = "Dispatched"     // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"      // Customer received the item
)

// ParseOrderStatus maps a raw status string to a known OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPacked,
		OrderStatusDispatched, OrderStatusDelivered:
		return OrderStatus(s), nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"index;not null" json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID string  `gorm:"not null" json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
