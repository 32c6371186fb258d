package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carhive/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runOwnerGate(t *testing.T, session *models.Session) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if session != nil {
		c.Set(SessionKey, *session)
	}

	OwnerOnlyMiddleware()(c)
	return w, c
}

func TestOwnerOnlyAllowsOwner(t *testing.T) {
	w, c := runOwnerGate(t, &models.Session{UID: "u1", IsOwner: true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, c.IsAborted())
}

func TestOwnerOnlyRejectsRenter(t *testing.T) {
	w, c := runOwnerGate(t, &models.Session{UID: "u1", IsOwner: false})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}

// An unset owner flag routes as renter.
func TestOwnerOnlyRejectsMissingSession(t *testing.T) {
	w, c := runOwnerGate(t, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, c.IsAborted())
}
