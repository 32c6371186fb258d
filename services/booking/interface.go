package booking

import (
	bookingRepo "carhive/database/repository/booking"
	listingRepo "carhive/database/repository/listing"
	"carhive/models"
)

// BookingService owns the lifecycle of reservations.
type BookingService interface {
	// CreateBooking reserves the listing for the renter over the given date
	// range and returns the persisted booking with its confirmation code.
	CreateBooking(listingID, renterID, startDate, endDate string) (*models.Booking, error)
	// CancelBooking deletes the booking on behalf of callerUID, who must be
	// the booking's owner or its renter. Cancellation is terminal; no record
	// of the booking survives. Canceling an absent ID reports success.
	CancelBooking(id, callerUID string) error
	// ListByOwner returns dashboard rows for bookings made against the
	// owner's listings.
	ListByOwner(ownerID string) ([]models.BookingView, error)
	// ListByRenter returns dashboard rows for the renter's own bookings.
	ListByRenter(renterID string) ([]models.BookingView, error)
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ListingRepo listingRepo.ListingRepository
}
