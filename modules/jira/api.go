package jira

import (
	// Stdlib
	"net/http"
	"net/url"

	// Internal
	"github.com/salsaflow/versionify/modules/jira/client"
)

// API client instantiation ----------------------------------------------------

type BasicAuthRoundTripper struct {
	username string
	password string
	next     http.RoundTripper
}

func (rt *BasicAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(rt.username, rt.password)
	return rt.next.RoundTrip(req)
}

func newClient(config Config) *client.Client {
	relativeURL, _ := url.Parse("rest/api/2/")
	baseURL := config.ServerURL().ResolveReference(relativeURL)
	return client.New(baseURL, &http.Client{
		Transport: &BasicAuthRoundTripper{
			username: config.Username(),
			password: config.Password(),
			next:     http.DefaultTransport,
		},
		Timeout: config.Timeout(),
	})
}
