package models

// User is a platform account. IsOwner selects the owner dashboard; anything
// else routes as renter.
type User struct {
	ID           string `bson:"id" json:"id"`
	FirstName    string `bson:"firstName" json:"firstName"`
	LastName     string `bson:"lastName" json:"lastName"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	IsOwner      bool   `bson:"isOwner" json:"isOwner"`
}
