package listing

import (
	listingRepo "carhive/database/repository/listing"
	userRepo "carhive/database/repository/user"
	"carhive/models"
	"carhive/services/geocode"
)

// CreateListingInput carries the owner-entered fields for a new listing.
// Cost arrives as text, the way the client form submits it.
type CreateListingInput struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
	Cost         string `json:"cost"`
	City         string `json:"city"`
	Address      string `json:"address"`
	ImageURL     string `json:"imageUrl"`
}

// ListingDetail is a listing plus the owner's display name, resolved for the
// car profile screen.
type ListingDetail struct {
	models.Listing
	OwnerFirstName string `json:"ownerFirstName"`
	OwnerLastName  string `json:"ownerLastName"`
}

// CitySearchResult is the renter search payload: the city's map center and
// every listing whose city field matches exactly.
type CitySearchResult struct {
	Center   geocode.Coordinates `json:"center"`
	Listings []models.Listing    `json:"listings"`
}

// ListingService owns the lifecycle of vehicle listings.
type ListingService interface {
	// CreateListing validates input, geocodes the address, and persists a new
	// listing owned by ownerID with isBooked=false.
	CreateListing(ownerID string, input CreateListingInput) (*models.Listing, error)
	// GetListing retrieves a listing by ID.
	GetListing(id string) (*models.Listing, error)
	// GetListingDetail retrieves a listing together with its owner's name.
	GetListingDetail(id string) (*ListingDetail, error)
	// ListByOwner returns all listings created by the given owner.
	ListByOwner(ownerID string) ([]models.Listing, error)
	// SearchByCity geocodes the city for map centering and returns listings
	// whose city matches exactly.
	SearchByCity(city string) (*CitySearchResult, error)
}

// DefaultListingService is the production ListingService.
type DefaultListingService struct {
	Repo     listingRepo.ListingRepository
	UserRepo userRepo.UserRepository
	Geocoder geocode.Geocoder
}
