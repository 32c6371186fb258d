package user

import (
	"fmt"
	"strings"
	"time"

	"carhive/models"
	"carhive/services"
	"carhive/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// SignUp registers a new account: validates the form, rejects duplicate
// emails, hashes the password, persists the profile, and populates a session.
func (s *DefaultUserService) SignUp(input SignUpInput) (*AuthResponse, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" ||
		strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, services.ValidationError{Field: "signup", Reason: "all fields are required"}
	}
	if len(input.Password) < 6 {
		return nil, services.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, services.AuthError{Reason: "a user with this email already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsOwner:      input.IsOwner,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("SignUp: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.openSession(&userObj)
}

// openSession issues a token and stores the session blob under its hash.
func (s *DefaultUserService) openSession(userObj *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := models.Session{
		FirstName: userObj.FirstName,
		LastName:  userObj.LastName,
		Email:     userObj.Email,
		UID:       userObj.ID,
		IsOwner:   userObj.IsOwner,
	}
	if err := utils.SaveSession(utils.GetSessionClient(), utils.HashToken(token), session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return &AuthResponse{Session: session, Token: token}, nil
}
