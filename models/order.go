package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting review of the advance payment
	OrderStatusConfirmed OrderStatus = "confirmed" // advance payment verified by admin
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

// ParseOrderStatus maps a free-form string onto the closed status set.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;size:30;not null" json:"order_number"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`

	TotalAmount     float64 `gorm:"not null" json:"total_amount"`
	AdvancePaid     float64 `gorm:"default:0" json:"advance_paid"`
	RemainingAmount float64 `gorm:"not null" json:"remaining_amount"`

	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress string      `gorm:"not null" json:"shipping_address"`
	Phone           string      `gorm:"size:20;not null" json:"phone"`

	// Manual payment proof: a bank transfer reference plus an uploaded screenshot.
	UTRNumber         string `gorm:"size:50" json:"utr_number"`
	PaymentScreenshot string `gorm:"size:200" json:"payment_screenshot"`

	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem snapshots the unit price at purchase time. Rows are never mutated
// and are deleted only together with their order.
type OrderItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint `gorm:"index;not null" json:"order_id"`
	ProductID uint `gorm:"index;not null" json:"product_id"`

	Quantity      int     `gorm:"not null" json:"quantity"`
	Price         float64 `gorm:"not null" json:"price"`
	SelectedColor string  `gorm:"size:50" json:"selected_color"`
	SelectedSize  string  `gorm:"size:20" json:"selected_size"`
}
