package canvas

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// Depaginate fetches path and every page after it, following the Link
// header's rel="next" until none is left. Items keep server order. If any
// page fails the whole call fails with that page's failure and the pages
// already read are dropped.
func Depaginate[T any](ctx context.Context, c *Client, path string, params url.Values) result.Result[[]T] {
	items := make([]T, 0)
	next := c.firstPage(path, params)
	seen := make(map[string]bool)

	for page := 0; next != ""; page++ {
		if page >= maxPages || seen[next] {
			return result.Fail[[]T](result.Exception(fmt.Errorf("pagination did not terminate after %d pages", page)))
		}
		seen[next] = true

		var batch []T
		header, f := c.do(ctx, http.MethodGet, next, nil, &batch)
		if f != nil {
			return result.Fail[[]T](f)
		}
		items = append(items, batch...)
		next = NextLink(header)
	}
	return result.Success(items)
}

// NextLink returns the rel="next" URL from a Link header, or "".
func NextLink(h http.Header) string {
	return parseLinks(h)["next"]
}

// parseLinks parses RFC 8288 Link headers into rel -> url.
func parseLinks(h http.Header) map[string]string {
	links := make(map[string]string)
	for _, header := range h.Values("Link") {
		for _, part := range strings.Split(header, ",") {
			segments := strings.Split(part, ";")
			if len(segments) < 2 {
				continue
			}
			target := strings.TrimSpace(segments[0])
			if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
				continue
			}
			target = target[1 : len(target)-1]
			for _, param := range segments[1:] {
				key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
				if !ok || !strings.EqualFold(key, "rel") {
					continue
				}
				for _, rel := range strings.Fields(strings.Trim(value, `"`)) {
					if _, exists := links[rel]; !exists {
						links[rel] = target
					}
				}
			}
		}
	}
	return links
}
