package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	// ErrNotEligible means no Completed+Paid order of this user contains
	// the book. A client error, not a server fault.
	ErrNotEligible = errors.New("not eligible to review this book")
	// ErrDuplicateReview means the (user, book, order) triple already has
	// a review. A second qualifying order allows a second review.
	ErrDuplicateReview = errors.New("already reviewed this book for this order")
)

type AddReviewRequest struct {
	BookID  uint   `json:"book_id" binding:"required"`
	OrderID uint   `json:"order_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ClampRating forces a rating into the 1..5 band.
func ClampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// PinUserReview moves the requester's review (if any) to the front,
// leaving the rest in their retrieval order. Returns the pinned review
// separately so the response can echo it as user_review.
func PinUserReview(reviews []models.Review, userID string) ([]models.Review, *models.Review) {
	if userID == "" {
		return reviews, nil
	}
	for i, r := range reviews {
		if r.UserID == userID {
			pinned := reviews[i]
			reordered := make([]models.Review, 0, len(reviews))
			reordered = append(reordered, pinned)
			reordered = append(reordered, reviews[:i]...)
			reordered = append(reordered, reviews[i+1:]...)
			return reordered, &pinned
		}
	}
	return reviews, nil
}

// AddReview gates review creation on a qualifying order: owned by the
// user, Completed, Paid, and containing the book. Then one review per
// (user, book, order), backed by the unique index.
func AddReview(db *gorm.DB, userID string, req AddReviewRequest) (*models.Review, error) {
	var order models.Order
	err := db.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.id = ? AND orders.user_id = ? AND orders.status = ? AND orders.payment_status = ? AND order_items.book_id = ?",
			req.OrderID, userID, models.OrderStatusCompleted, models.PaymentStatusPaid, req.BookID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEligible
		}
		return nil, err
	}

	var existing models.Review
	err = db.Where("user_id = ? AND book_id = ? AND order_id = ?", userID, req.BookID, req.OrderID).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateReview
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := models.Review{
		UserID:  userID,
		BookID:  req.BookID,
		OrderID: req.OrderID,
		Rating:  ClampRating(req.Rating),
		Comment: req.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// POST /reviews
func AddReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		review, err := AddReview(db, userIDVal.(string), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotEligible):
				c.JSON(http.StatusForbidden, gin.H{"error": "Not eligible to review this book."})
			case errors.Is(err, ErrDuplicateReview):
				c.JSON(http.StatusBadRequest, gin.H{"error": "You've already reviewed this book for this order."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error submitting review."})
			}
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// GetBookReviewsHandler is public; with a valid token the caller's own
// review is pinned first and echoed separately.
// GET /reviews/book/:bookId
func GetBookReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookID, err := strconv.Atoi(c.Param("bookId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var reviews []models.Review
		if err := db.
			Preload("User").
			Where("book_id = ?", bookID).
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews."})
			return
		}

		userID := c.GetString("user_id")
		reviews, userReview := PinUserReview(reviews, userID)

		c.JSON(http.StatusOK, gin.H{"reviews": reviews, "user_review": userReview})
	}
}

// GET /reviews/my-reviews
func GetMyReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var reviews []models.Review
		if err := db.
			Preload("Book").
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reviews."})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
