package handlers

import (
	"net/http"

	"carhive/middleware"
	userSvc "carhive/services/user"

	"github.com/gin-gonic/gin"
)

// SignUpHandler registers a new account and returns the session and token.
func (hb *HandlerBundle) SignUpHandler(c *gin.Context) {
	var input userSvc.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.UserService.SignUp(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInHandler authenticates credentials and returns the session and token.
func (hb *HandlerBundle) SignInHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := hb.UserService.SignIn(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler clears the caller's session.
func (hb *HandlerBundle) SignOutHandler(c *gin.Context) {
	token := c.GetString(middleware.TokenKey)
	if err := hb.UserService.SignOut(token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
