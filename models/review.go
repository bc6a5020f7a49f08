package models

import "time"

// Review is tied to the specific order the book was bought under, so a
// repeat purchase may be reviewed again. The composite unique index keeps
// one review per (user, book, order).
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_user_book_order" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_user_book_order;index" json:"book_id"`
	Book      Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_user_book_order" json:"order_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5, clamped at the boundary
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
