/*
   Copyright (C) 2014  Salsita s.r.o.

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program. If not, see {http://www.gnu.org/licenses/}.
*/

package client

import (
	// Stdlib
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
)

const (
	LibraryVersion = "0.1.0"

	defaultUserAgent = "versionify/" + LibraryVersion
)

type M map[string]interface{}

type Client struct {
	// HTTP client to be used to send all the HTTP requests.
	// Authentication and timeouts are expected to be handled by it.
	httpClient *http.Client

	// Base URL of the JIRA REST API, e.g. https://jira.example.com/rest/api/2/
	BaseURL *url.URL

	// User-Agent header to be set for every request.
	UserAgent string

	// Project service.
	Projects *ProjectService

	// Version service.
	Versions *VersionService

	// Issue service.
	Issues *IssueService
}

func New(baseURL *url.URL, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	client := &Client{
		httpClient: httpClient,
		BaseURL:    baseURL,
		UserAgent:  defaultUserAgent,
	}
	client.Projects = newProjectService(client)
	client.Versions = newVersionService(client)
	client.Issues = newIssueService(client)
	return client
}

func (c *Client) NewRequest(method, urlPath string, body interface{}) (*http.Request, error) {
	path, err := url.Parse(urlPath)
	if err != nil {
		return nil, err
	}

	u := c.BaseURL.ResolveReference(path)

	var rawBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&rawBody).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, u.String(), &rawBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	return req, nil
}

func (c *Client) Do(req *http.Request, responseResource interface{}) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		// Try to parse the body as the error object.
		var errObject Error
		if err := json.NewDecoder(resp.Body).Decode(&errObject); err == nil {
			return resp, &ErrAPI{
				Response: resp,
				Err:      &errObject,
			}
		}
		return resp, &ErrAPI{
			Response: resp,
		}
	}

	if responseResource != nil && resp.StatusCode != http.StatusNoContent {
		err = json.NewDecoder(resp.Body).Decode(responseResource)
	}

	return resp, err
}

// Get sends an authenticated GET request to the given path,
// which is relative to the API base URL, and decodes the response into v.
func (c *Client) Get(urlPath string, v interface{}) (*http.Response, error) {
	req, err := c.NewRequest("GET", urlPath, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req, v)
}

// Post sends an authenticated POST request to the given path,
// which is relative to the API base URL, and decodes the response into v.
func (c *Client) Post(urlPath string, body, v interface{}) (*http.Response, error) {
	req, err := c.NewRequest("POST", urlPath, body)
	if err != nil {
		return nil, err
	}
	return c.Do(req, v)
}
