package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Author      string          `gorm:"not null" json:"author"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null;index" json:"category"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Image       string          `json:"image"` // public URL of the cover, empty if none uploaded
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookWithRating is the catalog listing enriched with review aggregates.
type BookWithRating struct {
	Book
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
