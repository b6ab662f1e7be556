package github

import (
	// Stdlib
	"context"
	"net/http"

	// Vendor
	gh "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

func newClient(config *Config) *gh.Client {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout: config.Timeout,
	})
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: config.Token,
	}))
	httpClient.Timeout = config.Timeout
	return gh.NewClient(httpClient)
}
