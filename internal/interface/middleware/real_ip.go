package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores the client IP in the Gin context (key: "real_ip"), which the
// rate limiter and access log key on. Proxy headers are only honoured when
// trustProxyHeaders is set:
// 1) CF-Connecting-IP
// 2) X-Forwarded-For (left-most)
// 3) fallback to c.ClientIP()
func RealIP(trustProxyHeaders bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := ""
		if trustProxyHeaders {
			ip = ipFromHeaders(c.GetHeader("CF-Connecting-IP"), c.GetHeader("X-Forwarded-For"))
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

func ipFromHeaders(cf, xff string) string {
	if ip := net.ParseIP(strings.TrimSpace(cf)); ip != nil {
		return ip.String()
	}
	if xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return ""
}
