package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carhive/config"
	"carhive/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func limitedRequest(ip string) (*httptest.ResponseRecorder, *gin.Context) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	c.Request.Header.Set("X-Forwarded-For", ip)
	return rec, c
}

func TestRateLimitExceededRespondsAndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.WarnLevel)
	prevLogger := utils.Logger
	utils.Logger = zap.New(core)
	t.Cleanup(func() { utils.Logger = prevLogger })

	prevLimit := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prevLimit })

	mw := RateLimitMiddleware()
	ip := "203.0.113.77"

	rec, c := limitedRequest(ip)
	mw(c)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = limitedRequest(ip)
	mw(c)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, c.IsAborted())

	// The warning reaches the configured logger, not a no-op global.
	entries := logs.FilterMessage("Rate limit exceeded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, ip, entries[0].ContextMap()["ip"])
}
