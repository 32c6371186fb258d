package models

// Booking represents one reservation of a Listing by a renter over a date
// range. OwnerID is a point-in-time copy of the listing's owner taken at
// booking time so owner dashboards can filter bookings without joining
// through the listing.
type Booking struct {
	ID               string `bson:"id" json:"id"`                             // Store-assigned identifier (UUID)
	ConfirmationCode string `bson:"confirmationCode" json:"confirmationCode"` // Short human reference, e.g. "QX4821"
	ListingID        string `bson:"listingId" json:"listingId"`               // Referenced listing, must exist at creation
	OwnerID          string `bson:"ownerId" json:"ownerId"`                   // Denormalized listing owner
	RenterID         string `bson:"renterId" json:"renterId"`                 // User who made the booking
	StartDate        string `bson:"startDate" json:"startDate"`               // Opaque date string, non-empty
	EndDate          string `bson:"endDate" json:"endDate"`                   // Opaque date string, non-empty
}

// BookingView is a dashboard row: the booking plus display fields resolved
// from the referenced listing.
type BookingView struct {
	Booking
	Brand string `json:"brand"`
	Model string `json:"model"`
}
