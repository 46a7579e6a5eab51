// Package middleware provides HTTP middleware for Gin framework.
package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the context key for request ID
const ContextKeyRequestID = "request_id"

// RequestID adds a unique request ID to each request
// #IMPLEMENTATION_DECISION: UUID v4 for traceability across logs
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(c *gin.Context) string {
	if requestIDVal, exists := c.Get(ContextKeyRequestID); exists {
		if requestID, ok := requestIDVal.(string); ok {
			return requestID
		}
	}
	return ""
}

// CORS configures Cross-Origin Resource Sharing
// #IMPLEMENTATION_DECISION: Configurable allowed origins for security
func CORS(allowedOrigins []string) gin.HandlerFunc {
	originsMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originsMap[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if originsMap[origin] || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Logger logs one line per request with the request ID, so a statement
// burst in the SQL log can be tied back to the endpoint that caused it.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		requestID := GetRequestID(c)
		if len(requestID) > 8 {
			requestID = requestID[:8]
		}
		if raw != "" {
			path = path + "?" + raw
		}

		//nolint:errcheck // Logging errors should not crash the request
		fmt.Fprintf(gin.DefaultWriter, "%s | %s | %s | %s | %s | %s | %s | %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			requestID,
			statusString(c.Writer.Status()),
			latency,
			c.ClientIP(),
			c.Request.Method,
			path,
			bytesString(c.Writer.Size()),
		)
	}
}

// statusString returns the colored status code
func statusString(code int) string {
	var color string
	switch {
	case code >= 200 && code < 300:
		color = "\033[32m"
	case code >= 300 && code < 400:
		color = "\033[36m"
	case code >= 400 && code < 500:
		color = "\033[33m"
	default:
		color = "\033[31m"
	}
	return color + strconv.Itoa(code) + "\033[0m"
}

// bytesString formats a response size for display
func bytesString(size int) string {
	if size < 0 {
		return "-"
	}
	if size < 1024 {
		return strconv.Itoa(size) + "B"
	}
	if size < 1024*1024 {
		return strconv.Itoa(size/1024) + "KB"
	}
	return strconv.Itoa(size/(1024*1024)) + "MB"
}

// Recovery recovers from panics and returns a 500 error
// #IMPLEMENTATION_DECISION: Custom recovery with request ID for debugging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(500, gin.H{
			"error":      "internal_server_error",
			"message":    "An unexpected error occurred",
			"request_id": GetRequestID(c),
		})
	})
}

// SecureHeaders adds security-related headers
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")

		c.Next()
	}
}
