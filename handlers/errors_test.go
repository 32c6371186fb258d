package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carhive/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.ValidationError{Field: "city", Reason: "must not be empty"}, http.StatusBadRequest},
		{"not found", services.NotFoundError{Resource: "listing", ID: "x"}, http.StatusNotFound},
		{"geocode", services.GeocodeError{Address: "nowhere"}, http.StatusUnprocessableEntity},
		{"auth", services.AuthError{Reason: "invalid credentials"}, http.StatusUnauthorized},
		{"forbidden", services.ForbiddenError{Reason: "only the booking's owner or renter may cancel it"}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tc.err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}
