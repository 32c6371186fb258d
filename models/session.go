package models

// Session is the authenticated caller's profile snapshot, built at sign-in
// from the users collection and threaded through requests. It is stored as a
// single Redis value so populate and reset are each one atomic operation.
type Session struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UID       string `json:"uid"`
	IsOwner   bool   `json:"isOwner"`
}
