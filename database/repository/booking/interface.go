package bookingRepo

import (
	"carhive/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record, assigning its ID.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.Booking, error)
	// Delete removes a booking record by its ID. Deleting an absent ID is
	// not an error.
	Delete(id string) error
	// GetByOwner retrieves all bookings made against the given owner's listings.
	GetByOwner(ownerID string) ([]models.Booking, error)
	// GetByRenter retrieves all bookings made by the given renter.
	GetByRenter(renterID string) ([]models.Booking, error)
}
