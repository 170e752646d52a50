package middleware

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/mvc"
)

// NoCache returns a method decorator that stops clients and proxies from
// caching the response.
func NoCache() mvc.Decorator {
	return mvc.Header(mvc.Fields{
		{Name: "Cache-Control", Value: "no-store, no-cache, must-revalidate, max-age=0"},
		{Name: "Pragma", Value: "no-cache"},
		{Name: "Expires", Value: "0"},
	})
}

// Cache returns a method decorator allowing private caching for maxAge,
// truncated to whole seconds. A non-positive maxAge behaves like NoCache.
func Cache(maxAge time.Duration) mvc.Decorator {
	if maxAge <= 0 {
		return NoCache()
	}
	return mvc.Header("Cache-Control", "private, max-age="+strconv.FormatInt(int64(maxAge/time.Second), 10))
}
