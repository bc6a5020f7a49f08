package bookControllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadDir resolves where cover images land on disk. main.go serves the
// same directory under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// saveCoverImage stores the uploaded file and returns its public URL.
func saveCoverImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := strings.ReplaceAll(file.Filename, " ", "_")

	saveDir := filepath.Join(UploadDir(), "covers")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("/uploads/covers/%s", filename), nil
}

// deleteCoverImage removes a previously stored cover by its public URL.
// Best effort: a missing file is not an error worth surfacing.
func deleteCoverImage(imageURL string) {
	rel := strings.TrimPrefix(imageURL, "/uploads/")
	if rel == "" || rel == imageURL {
		return
	}
	_ = os.Remove(filepath.Join(UploadDir(), rel))
}
