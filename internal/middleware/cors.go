package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches a single subdomain label, e.g. https://*.example.com
type wildcardOrigin struct {
	scheme string // "https://"
	suffix string // ".example.com"
}

// parseWildcardOrigin returns nil unless pattern has the form
// scheme://*.domain.tld with exactly one leading wildcard
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	scheme, host, ok := strings.Cut(pattern, "://")
	if !ok || scheme == "" {
		return nil
	}
	if !strings.HasPrefix(host, "*.") || strings.Count(host, "*") != 1 {
		return nil
	}
	suffix := host[1:]
	// at least two labels after the wildcard
	if strings.Count(suffix, ".") < 2 {
		return nil
	}
	return &wildcardOrigin{scheme: scheme + "://", suffix: suffix}
}

func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	label := strings.TrimSuffix(host, w.suffix)
	return label != "" && !strings.ContainsAny(label, "./:")
}

// CORS handles cross-origin requests. An empty allowedOrigins list allows
// every origin; entries may be exact origins or single-label wildcards.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	exact := make(map[string]bool)
	var wildcards []*wildcardOrigin
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if w := parseWildcardOrigin(o); w != nil {
			wildcards = append(wildcards, w)
			continue
		}
		exact[o] = true
	}
	allowAll := len(exact) == 0 && len(wildcards) == 0

	allowed := func(origin string) bool {
		if exact[origin] {
			return true
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowed(origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Add("Vary", "Origin")
		case c.Request.Method == http.MethodOptions:
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
