package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// LegacyRoute marks responses served through the original route layout so
// that clients can migrate to the prefixed routes. The successor path is the
// request path with legacyPrefix swapped for currentPrefix.
func LegacyRoute(legacyPrefix, currentPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		successor := currentPrefix + strings.TrimPrefix(c.Request.URL.Path, legacyPrefix)
		c.Header("Deprecation", "true")
		c.Header("Link", "<"+successor+`>; rel="successor-version"`)
		c.Next()
	}
}
