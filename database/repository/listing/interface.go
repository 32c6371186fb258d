package listingRepo

import (
	"carhive/models"
)

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// Create inserts a new listing record, assigning its ID.
	Create(listing *models.Listing) error
	// GetByID retrieves a listing by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.Listing, error)
	// GetByIDs retrieves all listings whose ID is in the given set.
	GetByIDs(ids []string) ([]models.Listing, error)
	// GetByOwner retrieves all listings created by the given user.
	GetByOwner(ownerID string) ([]models.Listing, error)
	// GetByCity retrieves all listings in the given city (exact match).
	GetByCity(city string) ([]models.Listing, error)
}
