package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInsufficientStock aborts the whole placement; the client gets an
	// aggregate message that names no specific book.
	ErrInsufficientStock = errors.New("not enough stock for one or more books")
	ErrBookNotFound      = errors.New("one or more books do not exist")
	ErrNegativeAmount    = errors.New("price and total amount must not be negative")
)

// -------- Request Structs --------

type OrderItemInput struct {
	BookID   uint            `json:"book_id" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price"` // zero is a valid price, checked for sign below
}

type PlaceOrderRequest struct {
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
}

type UpdateOrderRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	} {
		if strings.EqualFold(status, string(s)) {
			return s, nil
		}
	}
	return "", errors.New("invalid order status")
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	for _, s := range []models.PaymentStatus{
		models.PaymentStatusUnpaid,
		models.PaymentStatusPaid,
	} {
		if strings.EqualFold(status, string(s)) {
			return s, nil
		}
	}
	return "", errors.New("invalid payment status")
}

// generateOrderRef builds a unique, human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// ValidateStock checks requested quantities against current stock.
// Quantities are summed per book first, so repeated line items for the
// same book count against the same stock. Callers must pass the
// complete set of referenced books.
func ValidateStock(books []models.Book, items []OrderItemInput) error {
	stockByID := make(map[uint]int, len(books))
	for _, b := range books {
		stockByID[b.ID] = b.Stock
	}
	wantByID := make(map[uint]int, len(items))
	for _, item := range items {
		if _, ok := stockByID[item.BookID]; !ok {
			return ErrBookNotFound
		}
		wantByID[item.BookID] += item.Quantity
	}
	for id, want := range wantByID {
		if want > stockByID[id] {
			return ErrInsufficientStock
		}
	}
	return nil
}

// -------- Core Logic --------

// PlaceOrder validates stock and commits the order in one transaction.
// Row locks on every referenced book keep concurrent placements from
// overselling, and a failure anywhere rolls the whole placement back.
// Item prices and the total are stored as supplied by the caller; the
// order snapshot never tracks later catalog price changes.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	if req.TotalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	for _, item := range req.Items {
		if item.Price.IsNegative() {
			return nil, ErrNegativeAmount
		}
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		bookIDs := make([]uint, 0, len(req.Items))
		for _, item := range req.Items {
			bookIDs = append(bookIDs, item.BookID)
		}

		var books []models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", bookIDs).
			Find(&books).Error; err != nil {
			return err
		}

		if err := ValidateStock(books, req.Items); err != nil {
			return err
		}

		titleByID := make(map[uint]string, len(books))
		for _, b := range books {
			titleByID[b.ID] = b.Title
		}

		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			if err := tx.Model(&models.Book{}).
				Where("id = ?", item.BookID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				BookID:    item.BookID,
				BookTitle: titleByID[item.BookID],
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			TotalAmount:   req.TotalAmount,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusUnpaid,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder restores each line item's quantity onto the book's stock,
// then removes the order. Transactional, so a failure restores nothing.
func DeleteOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.Book{}).
				Where("id = ?", item.BookID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceOrder(db, userIDVal.(string), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock for one or more books."})
			case errors.Is(err, ErrBookNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more books do not exist."})
			case errors.Is(err, ErrNegativeAmount):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price and total amount must not be negative."})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error placing order."})
			}
			return
		}

		broadcastOrderEvent("order_created", *order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/my-orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Preload("Items.Book").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders."})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Book").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders."})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderHandler applies a partial status/payment update. Only enum
// membership is validated; transition legality is not enforced.
// PATCH /orders/:orderID (admin)
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order."})
			return
		}

		if req.Status != nil {
			status, err := mapOrderStatus(*req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			order.Status = status
		}
		if req.PaymentStatus != nil {
			paymentStatus, err := mapPaymentStatus(*req.PaymentStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			order.PaymentStatus = paymentStatus
		}

		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating order."})
			return
		}

		broadcastOrderEvent("order_updated", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully.", "order": order})
	}
}

// DELETE /orders/:orderID (admin)
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := DeleteOrder(db, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting order."})
			return
		}

		broadcastOrderEvent("order_deleted", *order)
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted and stock restored."})
	}
}
