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
	"fmt"
	"net/http"

	// Vendor
	"github.com/google/go-querystring/query"
)

// Resources -------------------------------------------------------------------

// IssueList represents a page of issues as returned by the search resource.
type IssueList struct {
	Expand     string   `json:"expand,omitempty"`
	StartAt    int      `json:"startAt,omitempty"`
	MaxResults int      `json:"maxResults,omitempty"`
	Total      int      `json:"total,omitempty"`
	Issues     []*Issue `json:"issues,omitempty"`
}

// Issue represents the issue resource as produced by the REST API.
type Issue struct {
	Id     string `json:"id,omitempty"`
	Self   string `json:"self,omitempty"`
	Key    string `json:"key,omitempty"`
	Fields struct {
		Summary   string `json:"summary,omitempty"`
		IssueType struct {
			Id      string `json:"id,omitempty"`
			Name    string `json:"name,omitempty"`
			Subtask bool   `json:"subtask,omitempty"`
		} `json:"issuetype,omitempty"`
		Parent      *Issue       `json:"parent,omitempty"`
		FixVersions []*Version   `json:"fixVersions,omitempty"`
		Labels      []string     `json:"labels,omitempty"`
		Status      *IssueStatus `json:"status,omitempty"`
	} `json:"fields,omitempty"`
}

// IssueStatus represents an issue status, e.g. "In Progress".
type IssueStatus struct {
	Id   string `json:"id,omitempty"`
	Self string `json:"self,omitempty"`
	Name string `json:"name,omitempty"`
}

// Transition represents a workflow transition available for an issue.
type Transition struct {
	Id   string       `json:"id,omitempty"`
	Name string       `json:"name,omitempty"`
	To   *IssueStatus `json:"to,omitempty"`
}

type transitionList struct {
	Transitions []*Transition `json:"transitions"`
}

// The service -----------------------------------------------------------------

type IssueService struct {
	client *Client
}

func newIssueService(client *Client) *IssueService {
	return &IssueService{client}
}

type SearchOptions struct {
	JQL           string `url:"jql,omitempty"`
	StartAt       int    `url:"startAt,omitempty"`
	MaxResults    int    `url:"maxResults,omitempty"`
	ValidateQuery bool   `url:"validateQuery,omitempty"`
	Fields        string `url:"fields,omitempty"`
}

// Search returns a single page of issues matching the given options.
func (service *IssueService) Search(opts *SearchOptions) (*IssueList, *http.Response, error) {
	u := "search"
	if opts != nil {
		vs, err := query.Values(opts)
		if err != nil {
			return nil, nil, err
		}
		u += "?" + vs.Encode()
	}

	var issueList IssueList
	resp, err := service.client.Get(u, &issueList)
	if err != nil {
		return nil, resp, err
	}
	return &issueList, resp, nil
}

// SearchAll walks all the result pages and returns the issues
// in the order as returned by JIRA.
func (service *IssueService) SearchAll(opts *SearchOptions) ([]*Issue, error) {
	var o SearchOptions
	if opts != nil {
		o = *opts
	}
	var issues []*Issue
	for {
		page, _, err := service.Search(&o)
		if err != nil {
			return nil, err
		}
		issues = append(issues, page.Issues...)

		if len(page.Issues) == 0 || len(issues) >= page.Total {
			return issues, nil
		}
		o.StartAt = len(issues)
	}
}

// Get returns the chosen issue.
func (service *IssueService) Get(issueIdOrKey string) (*Issue, *http.Response, error) {
	var issue Issue
	resp, err := service.client.Get(fmt.Sprintf("issue/%v", issueIdOrKey), &issue)
	if err != nil {
		return nil, resp, err
	}
	return &issue, resp, nil
}

// Update updates the chosen issue.
func (service *IssueService) Update(issueIdOrKey string, body interface{}) (*http.Response, error) {
	req, err := service.client.NewRequest("PUT", fmt.Sprintf("issue/%v", issueIdOrKey), body)
	if err != nil {
		return nil, err
	}
	return service.client.Do(req, nil)
}

// ListTransitions returns the transitions available for the chosen issue.
func (service *IssueService) ListTransitions(issueIdOrKey string) ([]*Transition, *http.Response, error) {
	var list transitionList
	resp, err := service.client.Get(fmt.Sprintf("issue/%v/transitions", issueIdOrKey), &list)
	if err != nil {
		return nil, resp, err
	}
	return list.Transitions, resp, nil
}

// PerformTransition performs the requested transition for the chosen issue.
func (service *IssueService) PerformTransition(issueIdOrKey, transitionId string) (*http.Response, error) {
	u := fmt.Sprintf("issue/%v/transitions", issueIdOrKey)
	body := M{
		"transition": M{
			"id": transitionId,
		},
	}
	return service.client.Post(u, body, nil)
}
