package handlers

import (
	"net/http"

	"carhive/middleware"
	listingSvc "carhive/services/listing"

	"github.com/gin-gonic/gin"
)

// CreateListingHandler creates a listing owned by the authenticated user.
func (hb *HandlerBundle) CreateListingHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input listingSvc.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.ListingService.CreateListing(session.UID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetListingHandler returns a listing with the owner's display name.
func (hb *HandlerBundle) GetListingHandler(c *gin.Context) {
	detail, err := hb.ListingService.GetListingDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MyListingsHandler returns the owner dashboard: the caller's listings plus
// an emptiness flag for the empty state.
func (hb *HandlerBundle) MyListingsHandler(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listings, err := hb.ListingService.ListByOwner(session.UID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "empty": len(listings) == 0})
}

// SearchHandler geocodes the requested city and returns its listings.
func (hb *HandlerBundle) SearchHandler(c *gin.Context) {
	city := c.Query("city")
	result, err := hb.ListingService.SearchByCity(city)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
