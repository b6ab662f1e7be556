package client

import (
	// Stdlib
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultBaseURL = "https://api.podio.com/"
	TokenURL       = "https://podio.com/oauth/token"
)

const userAgent = "versionify"

// Client is a minimal Podio API client.
// Authentication is expected to be handled by the HTTP client passed to New.
type Client struct {
	httpClient *http.Client

	BaseURL   *url.URL
	UserAgent string

	Statuses *StatusService
	Comments *CommentService
}

// New returns a new Podio client using the given HTTP client.
// When baseURL is nil, DefaultBaseURL is used.
func New(baseURL *url.URL, httpClient *http.Client) *Client {
	if baseURL == nil {
		baseURL, _ = url.Parse(DefaultBaseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		BaseURL:    baseURL,
		UserAgent:  userAgent,
	}
	c.Statuses = &StatusService{c}
	c.Comments = &CommentService{c}
	return c
}

func (c *Client) NewRequest(method, urlPath string, body interface{}) (*http.Request, error) {
	relativeURL, err := url.Parse(urlPath)
	if err != nil {
		return nil, err
	}
	u := c.BaseURL.ResolveReference(relativeURL)

	var buf io.Reader
	if body != nil {
		var b bytes.Buffer
		if err := json.NewEncoder(&b).Encode(body); err != nil {
			return nil, err
		}
		buf = &b
	}

	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.UserAgent)
	return req, nil
}

func (c *Client) Do(req *http.Request, v interface{}) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		var apiErr Error
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return resp, &ErrAPI{resp, &apiErr}
	}

	if v != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil && err != io.EOF {
			return resp, err
		}
	}
	return resp, nil
}
