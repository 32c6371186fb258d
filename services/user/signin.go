package user

import (
	"fmt"

	"carhive/services"
	"carhive/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignIn authenticates the credentials and rebuilds the session from the
// stored profile record. The session has no persistent backing of its own;
// this is the only path that populates it.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, services.ValidationError{Field: "signin", Reason: "email and password are required"}
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, services.AuthError{Reason: "invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, services.AuthError{Reason: "invalid email or password"}
	}

	return s.openSession(userRec)
}

// SignOut clears the session referenced by the token in a single delete, so
// no partially reset session is ever observable. An already-cleared session
// signs out cleanly.
func (s *DefaultUserService) SignOut(token string) error {
	if err := utils.ClearSession(utils.GetSessionClient(), utils.HashToken(token)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
