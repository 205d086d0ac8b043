package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/callmev1nc/SmartInvest/configs"
	"github.com/callmev1nc/SmartInvest/services/cache"
)

func newRateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	m := NewAIRateLimitMiddleware(cache.NewCache(time.Hour))
	router := gin.New()
	router.POST("/chat", m.RateLimit(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set("X-Real-IP", ip)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_BlocksAfterMinuteBudget(t *testing.T) {
	router := newRateLimitedRouter()

	for i := 0; i < configs.CLIENT_RATE_LIMIT_REQ_PER_MINUTE; i++ {
		if w := doRequest(router, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i, w.Code)
		}
	}

	w := doRequest(router, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after budget, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("429 response should carry Retry-After")
	}
	if remaining := w.Header().Get("X-RateLimit-Remaining"); remaining != "0" {
		t.Fatalf("expected X-RateLimit-Remaining 0, got %q", remaining)
	}
}

func TestRateLimit_ClientsAreIsolated(t *testing.T) {
	router := newRateLimitedRouter()

	// Exhaust one client's budget
	for i := 0; i <= configs.CLIENT_RATE_LIMIT_REQ_PER_MINUTE; i++ {
		doRequest(router, "10.0.0.1")
	}

	// A different client still passes
	if w := doRequest(router, "10.0.0.2"); w.Code != http.StatusOK {
		t.Fatalf("second client should not be affected, got %d", w.Code)
	}
}
