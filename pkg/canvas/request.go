package canvas

import (
	"context"
	"net/http"
	"net/url"

	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// Get fetches a single object.
func Get[T any](ctx context.Context, c *Client, path string, params url.Values) result.Result[T] {
	var out T
	if _, f := c.do(ctx, http.MethodGet, c.resolve(path, params), nil, &out); f != nil {
		return result.Fail[T](f)
	}
	return result.Success(out)
}

// Post sends body (may be nil) and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, params url.Values, body any) result.Result[T] {
	var out T
	if _, f := c.do(ctx, http.MethodPost, c.resolve(path, params), body, &out); f != nil {
		return result.Fail[T](f)
	}
	return result.Success(out)
}

// Put sends body and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, params url.Values, body any) result.Result[T] {
	var out T
	if _, f := c.do(ctx, http.MethodPut, c.resolve(path, params), body, &out); f != nil {
		return result.Fail[T](f)
	}
	return result.Success(out)
}

// Delete issues a DELETE and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, path string, params url.Values) result.Result[T] {
	var out T
	if _, f := c.do(ctx, http.MethodDelete, c.resolve(path, params), nil, &out); f != nil {
		return result.Fail[T](f)
	}
	return result.Success(out)
}

// Self returns the user that owns the client's token.
func Self(ctx context.Context, c *Client) result.Result[User] {
	return Get[User](ctx, c, "users/self", nil)
}
