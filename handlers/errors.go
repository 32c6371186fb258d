package handlers

import (
	"errors"
	"net/http"

	"carhive/services"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service-layer errors onto HTTP statuses. Anything outside
// the taxonomy is a backend failure and stays opaque to the client.
func respondError(c *gin.Context, err error) {
	var (
		validationErr services.ValidationError
		notFoundErr   services.NotFoundError
		geocodeErr    services.GeocodeError
		authErr       services.AuthError
		forbiddenErr  services.ForbiddenError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Error())
	case errors.As(err, &geocodeErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Unable to locate address", geocodeErr.Error())
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", authErr.Error())
	case errors.As(err, &forbiddenErr):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", forbiddenErr.Error())
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
			Details: "Please try again later.",
		})
	}
}
