// Package routekey derives page-table keys from routes and matches request
// paths against them.
//
// Installed pages are keyed by an optional catch-all convention: the key
// for route "/signin" with slug "signin" is
//
//	signin/[[...signin]]/index
//
// which resolves the route itself and every sub-path ("/signin",
// "/signin/factor-two", ...) to the same page. Sub-path routing inside the
// page is handled client-side by the mounted widget.
package routekey

import (
	"fmt"
	"strings"
)

// CatchAll is the key suffix template. The slug names the path segments
// captured below the route.
const catchAllSuffix = "/[[...%s]]/index"

// Validate reports whether route is an absolute path. Routes must start
// with "/" so the derived key is stable; relative routes are a caller bug.
func Validate(route string) error {
	if !strings.HasPrefix(route, "/") {
		return fmt.Errorf("route %q must be absolute (start with %q)", route, "/")
	}
	return nil
}

// ForRoute derives the page-table key for the given absolute route and
// catch-all slug. The leading slash is stripped, everything else in the
// route is preserved as-is.
func ForRoute(route, slug string) string {
	return route[1:] + fmt.Sprintf(catchAllSuffix, slug)
}

// Base returns the route portion of a derived key (without the leading
// slash), and whether the key follows the catch-all convention.
func Base(key string) (string, bool) {
	idx := strings.Index(key, "/[[...")
	if idx == -1 || !strings.HasSuffix(key, "]]/index") {
		return "", false
	}
	return key[:idx], true
}

// Match reports whether a request path resolves to the page stored under
// key. A catch-all key matches its base route and every sub-path of it.
func Match(key, requestPath string) bool {
	base, ok := Base(key)
	if !ok {
		return false
	}

	path := strings.Trim(requestPath, "/")
	if base == "" {
		// Root route captures everything.
		return true
	}
	return path == base || strings.HasPrefix(path, base+"/")
}
