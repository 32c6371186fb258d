package handlers

import (
	bookingSvc "carhive/services/booking"
	listingSvc "carhive/services/listing"
	"carhive/services/storage"
	userSvc "carhive/services/user"
)

// HandlerBundle groups the endpoint handlers and the services they call.
type HandlerBundle struct {
	UserService    userSvc.UserService
	ListingService listingSvc.ListingService
	BookingService bookingSvc.BookingService
	StorageService storage.StorageService
}

// NewHandlerBundle wires handlers to their services.
func NewHandlerBundle(
	userService userSvc.UserService,
	listingService listingSvc.ListingService,
	bookingService bookingSvc.BookingService,
	storageService storage.StorageService,
) *HandlerBundle {
	return &HandlerBundle{
		UserService:    userService,
		ListingService: listingService,
		BookingService: bookingService,
		StorageService: storageService,
	}
}
