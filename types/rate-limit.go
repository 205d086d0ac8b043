package types

import (
	"time"
)

// RateLimitInfo tracks one client's usage inside the current minute window.
// It is stored JSON-encoded in the TTL cache, keyed by client IP.
type RateLimitInfo struct {
	ClientKey     string    `json:"clientKey"`
	RequestCount  int       `json:"requestCount"`
	FirstRequest  time.Time `json:"firstRequest"`
	LastRequest   time.Time `json:"lastRequest"`
	WindowResetAt time.Time `json:"windowResetAt"`
}
