package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// NewSecure returns a middleware that sets security headers.
// Development mode disables the host and SSL checks.
func NewSecure(isDevelopment bool) func(next http.Handler) http.Handler {
	s := secure.New(secure.Options{
		IsDevelopment:      isDevelopment,
		ContentTypeNosniff: true,
		FrameDeny:          true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
	return s.Handler
}
