package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type clientIPKey struct{}

// ClientIPMiddleware extracts the client IP address and injects it into the
// request context so services (e.g. login throttling) can use it.
// Register it early in the middleware chain.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := extractIPAddress(c.Request)

		c.Set("client_ip", ip)
		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, ip)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext retrieves the client IP from a request context.
// Returns empty string if not found.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

// extractIPAddress resolves the real client IP, preferring proxy headers.
func extractIPAddress(r *http.Request) string {
	// X-Real-IP is set by reverse proxies like Nginx
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For may contain multiple IPs; the first is the client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
