package canvas

import (
	"context"
	"strings"

	"golang.org/x/oauth2"
)

// AuthConfig holds the credentials for one Canvas user on one domain.
type AuthConfig struct {
	BaseURL      string
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string
}

// TokenSource returns the OAuth2 token source for cfg. With a refresh token
// and developer key the access token is renewed against
// /login/oauth2/token; otherwise the access token is used as is.
func TokenSource(ctx context.Context, cfg AuthConfig) oauth2.TokenSource {
	if cfg.RefreshToken != "" && cfg.ClientID != "" {
		base := strings.TrimRight(cfg.BaseURL, "/")
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + "/login/oauth2/auth",
				TokenURL:  base + "/login/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}
		return oc.TokenSource(ctx, &oauth2.Token{
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
		})
	}
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.AccessToken,
		TokenType:   "Bearer",
	})
}
