package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("completed")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusCompleted, status)

	status, err = mapOrderStatus("Pending")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, status)

	_, err = mapOrderStatus("shipped")
	require.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	status, err := mapPaymentStatus("paid")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, status)

	_, err = mapPaymentStatus("refunded")
	require.Error(t, err)
}

func TestValidateStock(t *testing.T) {
	books := []models.Book{
		{ID: 1, Stock: 5},
		{ID: 2, Stock: 0},
	}

	err := ValidateStock(books, []OrderItemInput{{BookID: 1, Quantity: 5}})
	require.NoError(t, err)

	err = ValidateStock(books, []OrderItemInput{{BookID: 1, Quantity: 6}})
	require.ErrorIs(t, err, ErrInsufficientStock)

	err = ValidateStock(books, []OrderItemInput{
		{BookID: 1, Quantity: 1},
		{BookID: 2, Quantity: 1},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	err = ValidateStock(books, []OrderItemInput{{BookID: 99, Quantity: 1}})
	require.ErrorIs(t, err, ErrBookNotFound)
}

// Repeated line items for one book count against the same stock, so two
// items of 3 against a stock of 5 must fail even though each fits alone.
func TestValidateStockDuplicateBook(t *testing.T) {
	books := []models.Book{{ID: 1, Stock: 5}}

	err := ValidateStock(books, []OrderItemInput{
		{BookID: 1, Quantity: 3},
		{BookID: 1, Quantity: 3},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	err = ValidateStock(books, []OrderItemInput{
		{BookID: 1, Quantity: 2},
		{BookID: 1, Quantity: 3},
	})
	require.NoError(t, err)
}

func TestPlaceOrderRejectsNegativeAmounts(t *testing.T) {
	_, err := PlaceOrder(nil, "user_1", PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: 1, Quantity: 1, Price: decimal.NewFromFloat(-0.01)}},
		TotalAmount: decimal.NewFromFloat(1),
	})
	require.ErrorIs(t, err, ErrNegativeAmount)

	_, err = PlaceOrder(nil, "user_1", PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: 1, Quantity: 1, Price: decimal.NewFromFloat(1)}},
		TotalAmount: decimal.NewFromFloat(-1),
	})
	require.ErrorIs(t, err, ErrNegativeAmount)
}

func TestGenerateOrderRefUnique(t *testing.T) {
	require.NotEqual(t, generateOrderRef(), generateOrderRef())
}

func TestOrderHandlersRejectMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/orders/:orderID", UpdateOrderHandler(nil))
	r.DELETE("/orders/:orderID", DeleteOrderHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/not-a-number", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/orders/not-a-number", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- DB-backed workflow tests ----

type OrderWorkflowTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *OrderWorkflowTestSuite) SetupSuite() {
	db, err := gorm.Open(postgres.Open(os.Getenv("TEST_DATABASE_URL")), &gorm.Config{})
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))
	s.db = db
}

func (s *OrderWorkflowTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM reviews")
	s.db.Exec("DELETE FROM order_items")
	s.db.Exec("DELETE FROM orders")
	s.db.Exec("DELETE FROM cart_items")
	s.db.Exec("DELETE FROM carts")
	s.db.Exec("DELETE FROM books")
	s.db.Exec("DELETE FROM users")
}

func (s *OrderWorkflowTestSuite) createTestUser(id string) *models.User {
	user := &models.User{
		ID:           id,
		Email:        id + "@example.com",
		Name:         "Test User",
		PasswordHash: "x$y",
	}
	require.NoError(s.T(), s.db.Create(user).Error)
	return user
}

func (s *OrderWorkflowTestSuite) createTestBook(title string, stock int) *models.Book {
	book := &models.Book{
		Title:       title,
		Author:      "Author",
		Price:       decimal.NewFromFloat(12.50),
		Description: "desc",
		Category:    "Fiction",
		Stock:       stock,
	}
	require.NoError(s.T(), s.db.Create(book).Error)
	return book
}

func (s *OrderWorkflowTestSuite) bookStock(id uint) int {
	var book models.Book
	require.NoError(s.T(), s.db.First(&book, id).Error)
	return book.Stock
}

func (s *OrderWorkflowTestSuite) TestPlaceOrderDecrementsStock() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	order, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{
			{BookID: book.ID, Quantity: 3, Price: decimal.NewFromFloat(12.50)},
		},
		TotalAmount: decimal.NewFromFloat(37.50),
	})

	require.NoError(s.T(), err)
	require.Equal(s.T(), models.OrderStatusPending, order.Status)
	require.Equal(s.T(), models.PaymentStatusUnpaid, order.PaymentStatus)
	require.NotEmpty(s.T(), order.OrderRef)
	require.Equal(s.T(), 2, s.bookStock(book.ID))
}

func (s *OrderWorkflowTestSuite) TestPlaceOrderFreezesSuppliedPrice() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	supplied := decimal.NewFromFloat(9.99)
	order, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: supplied}},
		TotalAmount: supplied,
	})
	require.NoError(s.T(), err)

	// catalog price changes never touch the snapshot
	require.NoError(s.T(), s.db.Model(&models.Book{}).Where("id = ?", book.ID).
		Update("price", decimal.NewFromFloat(99.99)).Error)

	var item models.OrderItem
	require.NoError(s.T(), s.db.First(&item, "order_id = ?", order.ID).Error)
	require.True(s.T(), supplied.Equal(item.Price))
}

func (s *OrderWorkflowTestSuite) TestPlaceOrderInsufficientStockAbortsAll() {
	user := s.createTestUser("user_1")
	inStock := s.createTestBook("Dune", 5)
	scarce := s.createTestBook("Hyperion", 1)

	_, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{
			{BookID: inStock.ID, Quantity: 2, Price: decimal.NewFromFloat(12.50)},
			{BookID: scarce.ID, Quantity: 3, Price: decimal.NewFromFloat(8.00)},
		},
		TotalAmount: decimal.NewFromFloat(49.00),
	})

	require.ErrorIs(s.T(), err, ErrInsufficientStock)

	// aggregate abort: neither stock moved, no order row
	require.Equal(s.T(), 5, s.bookStock(inStock.ID))
	require.Equal(s.T(), 1, s.bookStock(scarce.ID))
	var count int64
	s.db.Model(&models.Order{}).Count(&count)
	require.Zero(s.T(), count)
}

func (s *OrderWorkflowTestSuite) TestPlaceOrderUnknownBook() {
	user := s.createTestUser("user_1")

	_, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: 4242, Quantity: 1, Price: decimal.NewFromFloat(5)}},
		TotalAmount: decimal.NewFromFloat(5),
	})
	require.ErrorIs(s.T(), err, ErrBookNotFound)
}

func (s *OrderWorkflowTestSuite) TestDeleteOrderRestoresStock() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	order, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: book.ID, Quantity: 3, Price: decimal.NewFromFloat(12.50)}},
		TotalAmount: decimal.NewFromFloat(37.50),
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, s.bookStock(book.ID))

	_, err = DeleteOrder(s.db, 4242)
	require.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)

	_, err = DeleteOrder(s.db, order.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, s.bookStock(book.ID))

	var count int64
	s.db.Model(&models.Order{}).Count(&count)
	require.Zero(s.T(), count)
}

// A book starts with stock=5; a 3-unit order succeeds leaving 2; a second
// 3-unit order fails leaving 2; deleting the first restores 5.
func (s *OrderWorkflowTestSuite) TestStockRoundTrip() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	price := decimal.NewFromFloat(12.50)
	o1, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: book.ID, Quantity: 3, Price: price}},
		TotalAmount: price.Mul(decimal.NewFromInt(3)),
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, s.bookStock(book.ID))

	_, err = PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: book.ID, Quantity: 3, Price: price}},
		TotalAmount: price.Mul(decimal.NewFromInt(3)),
	})
	require.ErrorIs(s.T(), err, ErrInsufficientStock)
	require.Equal(s.T(), 2, s.bookStock(book.ID))

	_, err = DeleteOrder(s.db, o1.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, s.bookStock(book.ID))
}

// Two line items for the same book must not slip past the stock check
// one at a time and drive stock negative.
func (s *OrderWorkflowTestSuite) TestPlaceOrderDuplicateBookAborts() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	price := decimal.NewFromFloat(12.50)
	_, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{
			{BookID: book.ID, Quantity: 3, Price: price},
			{BookID: book.ID, Quantity: 3, Price: price},
		},
		TotalAmount: price.Mul(decimal.NewFromInt(6)),
	})

	require.ErrorIs(s.T(), err, ErrInsufficientStock)
	require.Equal(s.T(), 5, s.bookStock(book.ID))

	// the combined quantity still places when it fits
	order, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{
			{BookID: book.ID, Quantity: 2, Price: price},
			{BookID: book.ID, Quantity: 3, Price: price},
		},
		TotalAmount: price.Mul(decimal.NewFromInt(5)),
	})
	require.NoError(s.T(), err)
	require.Len(s.T(), order.Items, 2)
	require.Equal(s.T(), 0, s.bookStock(book.ID))
}

func (s *OrderWorkflowTestSuite) TestPlaceOrderFreeItem() {
	user := s.createTestUser("user_1")
	book := s.createTestBook("Dune", 5)

	order, err := PlaceOrder(s.db, user.ID, PlaceOrderRequest{
		Items:       []OrderItemInput{{BookID: book.ID, Quantity: 1, Price: decimal.Zero}},
		TotalAmount: decimal.Zero,
	})

	require.NoError(s.T(), err)
	require.True(s.T(), order.TotalAmount.IsZero())
	require.Equal(s.T(), 4, s.bookStock(book.ID))
}

func TestOrderWorkflowTestSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(OrderWorkflowTestSuite))
}
