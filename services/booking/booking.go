package booking

import (
	"fmt"
	"strings"

	"carhive/models"
	"carhive/services"
	"carhive/utils"

	"go.uber.org/zap"
)

// CreateBooking loads the referenced listing, validates the dates, and writes
// a booking with the listing's owner denormalized onto it. No chronological
// ordering or overlap check is performed: two near-simultaneous bookings of
// the same listing both succeed. The single-document write is the only
// atomicity relied upon.
func (s *DefaultBookingService) CreateBooking(listingID, renterID, startDate, endDate string) (*models.Booking, error) {
	if renterID == "" {
		return nil, services.ValidationError{Field: "renterID", Reason: "must not be empty"}
	}

	rec, err := s.ListingRepo.GetByID(listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing for booking: %w", err)
	}
	if rec == nil {
		return nil, services.NotFoundError{Resource: "listing", ID: listingID}
	}

	if strings.TrimSpace(startDate) == "" {
		return nil, services.ValidationError{Field: "startDate", Reason: "must not be empty"}
	}
	if strings.TrimSpace(endDate) == "" {
		return nil, services.ValidationError{Field: "endDate", Reason: "must not be empty"}
	}

	newBooking := &models.Booking{
		ConfirmationCode: GenerateConfirmationCode(),
		ListingID:        listingID,
		OwnerID:          rec.CreatedByUID,
		RenterID:         renterID,
		StartDate:        startDate,
		EndDate:          endDate,
	}
	if err := s.Repo.Create(newBooking); err != nil {
		utils.GetLogger().Error("CreateBooking: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return newBooking, nil
}

// CancelBooking deletes the booking record on behalf of callerUID. Only the
// booking's owner or its renter may cancel. Deleting an absent ID reports
// success, matching the store's delete semantics.
func (s *DefaultBookingService) CancelBooking(id, callerUID string) error {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking for cancel: %w", err)
	}
	if rec != nil && callerUID != rec.OwnerID && callerUID != rec.RenterID {
		return services.ForbiddenError{Reason: "only the booking's owner or renter may cancel it"}
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's booking dashboard rows.
func (s *DefaultBookingService) ListByOwner(ownerID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by owner: %w", err)
	}
	return s.toViews(bookings)
}

// ListByRenter returns the renter's booking dashboard rows.
func (s *DefaultBookingService) ListByRenter(renterID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.GetByRenter(renterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by renter: %w", err)
	}
	return s.toViews(bookings)
}

// toViews resolves the brand/model display fields for a set of bookings with
// one batched listings query instead of one lookup per row. A booking whose
// listing has vanished keeps empty display fields.
func (s *DefaultBookingService) toViews(bookings []models.Booking) ([]models.BookingView, error) {
	if len(bookings) == 0 {
		return []models.BookingView{}, nil
	}

	seen := make(map[string]bool, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if !seen[b.ListingID] {
			seen[b.ListingID] = true
			ids = append(ids, b.ListingID)
		}
	}

	listings, err := s.ListingRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve listings for bookings: %w", err)
	}
	byID := make(map[string]models.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if l, ok := byID[b.ListingID]; ok {
			view.Brand = l.Brand
			view.Model = l.Model
		}
		views = append(views, view)
	}
	return views, nil
}
