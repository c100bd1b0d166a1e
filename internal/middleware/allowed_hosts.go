package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
)

// AllowedHosts answers 400 for a Host header outside hosts. "*" or an empty list allows any
// host; an entry starting with "." also matches its subdomains.
func AllowedHosts(hosts []string) func(http.Handler) http.Handler {
	allowAll := len(hosts) == 0
	normalized := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "*" {
			allowAll = true
		}
		if h != "" {
			normalized = append(normalized, h)
		}
	}

	return func(next http.Handler) http.Handler {
		if allowAll {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hostAllowed(stripPort(r.Host), normalized) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{"error": "bad_host", "message": "Invalid Host header"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}

func hostAllowed(host string, allowed []string) bool {
	for _, a := range allowed {
		if host == a {
			return true
		}
		if strings.HasPrefix(a, ".") && (host == a[1:] || strings.HasSuffix(host, a)) {
			return true
		}
	}
	return false
}
