package podio

import (
	// Stdlib
	"context"
	"net/http"
	"net/url"

	// Vendor
	"golang.org/x/oauth2"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules/podio/client"
)

// newClient authenticates using the password flow
// and returns a client that keeps the access token fresh.
func newClient(config *Config) (*client.Client, error) {
	return newClientWithEndpoints(config, nil, client.TokenURL)
}

func newClientWithEndpoints(config *Config, baseURL *url.URL, tokenURL string) (*client.Client, error) {
	task := "Authenticate with Podio"

	conf := &oauth2.Config{
		ClientID:     config.APIKey,
		ClientSecret: config.APISecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout: config.Timeout,
	})

	token, err := conf.PasswordCredentialsToken(ctx, config.Username, config.Password)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err,
			"Make sure the Podio API key and user credentials are valid\n")
	}

	httpClient := conf.Client(ctx, token)
	httpClient.Timeout = config.Timeout
	return client.New(baseURL, httpClient), nil
}
