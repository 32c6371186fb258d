package handlers

import (
	"net/http"

	"carhive/middleware"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler books a listing for the authenticated renter.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		ListingID string `json:"listingId"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.BookingService.CreateBooking(input.ListingID, session.UID, input.StartDate, input.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CancelBookingHandler cancels a booking. Owner and renter may both cancel;
// anyone else gets a 403.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := hb.BookingService.CancelBooking(c.Param("id"), session.UID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking canceled"})
}

// MyBookingsHandler returns the renter dashboard rows.
func (hb *HandlerBundle) MyBookingsHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	views, err := hb.BookingService.ListByRenter(session.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views, "empty": len(views) == 0})
}

// ManagedBookingsHandler returns the owner dashboard rows: every booking made
// against the caller's listings.
func (hb *HandlerBundle) ManagedBookingsHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	views, err := hb.BookingService.ListByOwner(session.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views, "empty": len(views) == 0})
}
