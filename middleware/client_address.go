package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/securelog/securelog/clientctx"
)

// ClientAddress stores the caller's network address in the request context.
// Proxy headers are only consulted when trustProxy is set, since any client
// can send them.
func ClientAddress(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := clientctx.SetClientAddress(r.Context(), getIPAddress(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getIPAddress extracts the client IP from the request
func getIPAddress(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// Check X-Forwarded-For header (proxy/load balancer)
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			// Take first IP if multiple
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		// Check X-Real-IP header
		if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
			return realIP
		}
	}

	// Fall back to RemoteAddr, without the port
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
