package middleware

import (
	"net/http"
	"os"
	"strings"
)

// allowedOrigins is the set of origins that may call the API from a
// browser, read from the WEB_ALLOWED_ORIGINS environment variable.
type allowedOrigins map[string]struct{}

func parseAllowedOrigins() allowedOrigins {
	origins := make(allowedOrigins)
	if env := os.Getenv("WEB_ALLOWED_ORIGINS"); env != "" {
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins[o] = struct{}{}
			}
		}
	}
	return origins
}

// allows checks whether a request origin should receive CORS headers.
// Localhost origins on any port are always permitted for development.
func (a allowedOrigins) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if isLocalhostOrigin(origin) {
		return true
	}
	_, ok := a[origin]
	return ok
}

// isLocalhostOrigin returns true for http(s)://localhost origins on any
// port. Hosts merely starting with "localhost" do not qualify.
func isLocalhostOrigin(origin string) bool {
	for _, scheme := range []string{"http://", "https://"} {
		rest, ok := strings.CutPrefix(origin, scheme)
		if !ok {
			continue
		}
		if rest == "localhost" || strings.HasPrefix(rest, "localhost:") {
			return true
		}
	}
	return false
}

// CORS returns middleware that handles CORS headers with an origin
// whitelist. Allowed origins come from the WEB_ALLOWED_ORIGINS environment
// variable (comma-separated); localhost is always permitted.
func CORS() func(http.Handler) http.Handler {
	allowed := parseAllowedOrigins()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed.allows(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With")
			w.Header().Set("Access-Control-Max-Age", "86400")

			// Handle preflight requests.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
