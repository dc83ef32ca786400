// tracking.go - privacy-conscious visit tracking, nothing is stored
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// Paths that are never counted as visits. HTMX fragments are requested by a
// page that was already counted.
var untrackedPrefixes = []string{
	"/static/", "/favicon", "/metrics", "/healthz",
	"/projects", "/highlights-content", "/education-content", "/api/",
}

type visitorTracker struct {
	salt    string
	metrics *metrics
}

func newVisitorTracker(salt string, m *metrics) *visitorTracker {
	if salt == "" {
		salt = generateSalt()
	}
	return &visitorTracker{salt: salt, metrics: m}
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate visitor hash salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so the raw address never reaches the logs (consistent per IP)
func (t *visitorTracker) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + t.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (t *visitorTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		t.metrics.pageViews.WithLabelValues(route).Inc()
		log.Printf("Visit %s from %s (status %d)", route, t.hashIP(c.ClientIP()), c.Writer.Status())
	}
}
