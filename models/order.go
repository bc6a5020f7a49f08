package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // placed, awaiting fulfilment
	OrderStatusCompleted OrderStatus = "Completed" // fulfilled
	OrderStatusCancelled OrderStatus = "Cancelled"

	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderRef      string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string          `gorm:"not null;index" json:"user_id"`
	User          User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_amount"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentStatus PaymentStatus   `gorm:"type:VARCHAR(20);default:'Unpaid'" json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem freezes the unit price at placement; later catalog price
// changes never touch it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	BookID    uint            `gorm:"not null" json:"book_id"`
	Book      Book            `gorm:"foreignKey:BookID" json:"book,omitempty"`
	BookTitle string          `json:"book_title"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
}
