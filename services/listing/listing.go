package listing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"carhive/models"
	"carhive/services"
	"carhive/services/geocode"
	"carhive/utils"

	"go.uber.org/zap"
)

// CreateListing validates the owner's input, resolves "address, city" to
// coordinates, and writes the listing. One geocode lookup and one store write
// per call; geocoding results are not cached.
func (s *DefaultListingService) CreateListing(ownerID string, input CreateListingInput) (*models.Listing, error) {
	if ownerID == "" {
		return nil, services.ValidationError{Field: "ownerID", Reason: "must not be empty"}
	}

	required := map[string]string{
		"brand":        input.Brand,
		"model":        input.Model,
		"color":        input.Color,
		"licensePlate": input.LicensePlate,
		"city":         input.City,
		"address":      input.Address,
		"imageUrl":     input.ImageURL,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, services.ValidationError{Field: field, Reason: "must not be empty"}
		}
	}

	cost, err := strconv.ParseFloat(strings.TrimSpace(input.Cost), 64)
	if err != nil {
		return nil, services.ValidationError{Field: "cost", Reason: "must be a number"}
	}
	if cost < 0 {
		return nil, services.ValidationError{Field: "cost", Reason: "must not be negative"}
	}

	fullLocation := fmt.Sprintf("%s, %s", input.Address, input.City)
	coords, err := s.Geocoder.Resolve(context.Background(), fullLocation)
	if err != nil {
		if errors.Is(err, geocode.ErrUnresolvable) {
			return nil, services.GeocodeError{Address: fullLocation, Err: err}
		}
		return nil, fmt.Errorf("failed to geocode listing address: %w", err)
	}

	newListing := &models.Listing{
		Brand:        input.Brand,
		Model:        input.Model,
		Color:        input.Color,
		LicensePlate: input.LicensePlate,
		Cost:         cost,
		City:         input.City,
		Address:      input.Address,
		ImageURL:     input.ImageURL,
		CreatedByUID: ownerID,
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,
		IsBooked:     false,
	}
	if err := s.Repo.Create(newListing); err != nil {
		utils.GetLogger().Error("CreateListing: failed to persist listing", zap.Error(err))
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return newListing, nil
}

// GetListing retrieves a listing by ID.
func (s *DefaultListingService) GetListing(id string) (*models.Listing, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	if rec == nil {
		return nil, services.NotFoundError{Resource: "listing", ID: id}
	}
	return rec, nil
}

// GetListingDetail resolves the listing and its owner's display name. A
// missing owner profile leaves the name fields empty rather than failing the
// whole read.
func (s *DefaultListingService) GetListingDetail(id string) (*ListingDetail, error) {
	rec, err := s.GetListing(id)
	if err != nil {
		return nil, err
	}

	detail := &ListingDetail{Listing: *rec}
	owner, err := s.UserRepo.GetByID(rec.CreatedByUID)
	if err != nil {
		utils.GetLogger().Warn("GetListingDetail: failed to load owner profile",
			zap.String("listingId", id), zap.Error(err))
		return detail, nil
	}
	if owner != nil {
		detail.OwnerFirstName = owner.FirstName
		detail.OwnerLastName = owner.LastName
	}
	return detail, nil
}

// ListByOwner returns all listings created by the given owner.
func (s *DefaultListingService) ListByOwner(ownerID string) ([]models.Listing, error) {
	listings, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings by owner: %w", err)
	}
	return listings, nil
}

// SearchByCity geocodes the city name for map centering and queries listings
// by exact city match. An unresolvable city fails the search before the
// listings query is issued.
func (s *DefaultListingService) SearchByCity(city string) (*CitySearchResult, error) {
	if strings.TrimSpace(city) == "" {
		return nil, services.ValidationError{Field: "city", Reason: "must not be empty"}
	}

	center, err := s.Geocoder.Resolve(context.Background(), city)
	if err != nil {
		if errors.Is(err, geocode.ErrUnresolvable) {
			return nil, services.GeocodeError{Address: city, Err: err}
		}
		return nil, fmt.Errorf("failed to geocode city: %w", err)
	}

	listings, err := s.Repo.GetByCity(city)
	if err != nil {
		return nil, fmt.Errorf("failed to search listings by city: %w", err)
	}
	return &CitySearchResult{Center: center, Listings: listings}, nil
}
