package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores listing images and hands back the URL the client
// submits as a listing's imageUrl.
type StorageService interface {
	// UploadImage uploads the file at localFilePath into the listings folder
	// and returns its public URL.
	UploadImage(ctx context.Context, localFilePath string) (string, error)
	// DeleteImage removes a previously uploaded image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed StorageService.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
