package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadListingImageHandler accepts a multipart image, stores it, and returns
// the URL the client submits as the listing's imageUrl.
func (hb *HandlerBundle) UploadListingImageHandler(c *gin.Context) {
	if hb.StorageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image upload is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	// Generated name; the client-supplied filename never touches the path.
	tempFilePath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := hb.StorageService.UploadImage(ctx, tempFilePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
