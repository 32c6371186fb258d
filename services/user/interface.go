package user

import (
	userRepo "carhive/database/repository/user"
	"carhive/models"
)

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsOwner   bool   `json:"isOwner"`
}

// AuthResponse is returned by a successful sign-up or sign-in: the populated
// session and the bearer token that references it.
type AuthResponse struct {
	Session models.Session `json:"session"`
	Token   string         `json:"token"`
}

// UserService is the identity provider surface: account creation,
// authentication, and session teardown.
type UserService interface {
	// SignUp creates the account and profile record, populates a session,
	// and returns it with a fresh token.
	SignUp(input SignUpInput) (*AuthResponse, error)
	// SignIn verifies credentials, rebuilds the session from the stored
	// profile, and returns it with a fresh token.
	SignIn(email, password string) (*AuthResponse, error)
	// SignOut clears the session referenced by the token. All session fields
	// reset together.
	SignOut(token string) error
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
