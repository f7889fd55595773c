package controller

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

// scriptedClients are user agents of HTTP libraries and tools that the
// user agent parser does not flag as bots.
var scriptedClients = []string{ //nolint: gochecknoglobals
	"curl/", "wget/", "python-requests", "python-urllib", "go-http-client",
	"okhttp", "libwww-perl", "scrapy", "httpclient", "headlesschrome",
}

// IsBot reports whether the user agent belongs to a crawler, a headless
// browser or a scripting library. Empty user agents are bots.
func IsBot(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return true
	}

	lower := strings.ToLower(userAgent)
	for _, c := range scriptedClients {
		if strings.Contains(lower, c) {
			return true
		}
	}

	return useragent.New(userAgent).Bot()
}

// WithBotGuard rejects requests whose user agent looks automated with 403.
// The mobile shell identifies itself with the X-Client header and passes
// even with a library user agent when it is listed in trustedClients.
func WithBotGuard(trustedClients []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := r.Header.Get("X-Client")
			trusted := false
			for _, c := range trustedClients {
				if client != "" && client == c {
					trusted = true

					break
				}
			}

			if !trusted && IsBot(r.UserAgent()) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"code":"FORBIDDEN","message":"automated clients are not allowed"}`))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
