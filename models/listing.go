package models

// Listing represents one vehicle available for rent, owned by a single user.
type Listing struct {
	ID           string  `bson:"id" json:"id"`                     // Store-assigned identifier (UUID), immutable
	Brand        string  `bson:"brand" json:"brand"`               // e.g., "Toyota"
	Model        string  `bson:"model" json:"model"`               // e.g., "Camry"
	Color        string  `bson:"color" json:"color"`               // Display colour
	LicensePlate string  `bson:"licensePlate" json:"licensePlate"` // Plate text, not validated against any registry
	Cost         float64 `bson:"cost" json:"cost"`                 // Daily rental cost, non-negative
	City         string  `bson:"city" json:"city"`                 // Exact-match search key
	Address      string  `bson:"address" json:"address"`           // Street address, geocoded together with City
	ImageURL     string  `bson:"imageUrl" json:"imageUrl"`         // URI of the vehicle photo
	CreatedByUID string  `bson:"createdByUID" json:"createdByUID"` // Owning user, set once at creation
	Latitude     float64 `bson:"latitude" json:"latitude"`         // Derived from Address+City at creation
	Longitude    float64 `bson:"longitude" json:"longitude"`
	IsBooked     bool    `bson:"isBooked" json:"isBooked"` // Availability flag, false at creation
}
