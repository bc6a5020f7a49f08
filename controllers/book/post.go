package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/Sashank007-leon/BookNexus/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateBook adds a catalog entry with an optional cover image upload.
// POST /books (admin, multipart form)
func CreateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		author := c.PostForm("author")
		priceStr := c.PostForm("price")
		description := c.PostForm("description")
		category := c.PostForm("category")
		stockStr := c.PostForm("stock")

		if title == "" || author == "" || priceStr == "" || description == "" || category == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, author, price, description, category, and stock are required"})
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must be a non-negative integer"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveCoverImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		book := models.Book{
			Title:       title,
			Author:      author,
			Price:       price,
			Description: description,
			Category:    category,
			Stock:       stock,
			Image:       imageURL,
		}

		if err := db.Create(&book).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
			return
		}

		c.JSON(http.StatusCreated, book)
	}
}
