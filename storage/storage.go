// Package storage writes uploaded images under the uploads root and removes
// them best-effort during cleanup.
package storage

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Root is the uploads directory, overridable through UPLOADS_DIR. Files are
// recorded in the database as paths relative to it and served under /uploads.
func Root() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveUpload stores a multipart file under Root()/subdir with a
// collision-resistant generated name and returns the relative path recorded
// in the database, e.g. "payments/1712app_3f9ac2d1.jpg".
func SaveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(Root(), subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s_%s%s", time.Now().Unix(), base, uuid.NewString()[:8], ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// Remove deletes a stored file best-effort. Failures are logged and never
// surfaced: a leftover file must not block the database mutation it
// accompanied.
func Remove(relPath string) {
	if relPath == "" {
		return
	}
	path := filepath.Join(Root(), filepath.FromSlash(relPath))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️ Failed to remove upload %s: %v", relPath, err)
	}
}
