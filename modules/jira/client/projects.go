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
)

// Resources -------------------------------------------------------------------

type Project struct {
	Self string `json:"self,omitempty"`
	Id   string `json:"id,omitempty"`
	Key  string `json:"key,omitempty"`
	Name string `json:"name,omitempty"`
}

// The service -----------------------------------------------------------------

type ProjectService struct {
	client *Client
}

func newProjectService(client *Client) *ProjectService {
	return &ProjectService{client}
}

// Get returns the project with the given ID or key.
func (service *ProjectService) Get(projectIdOrKey string) (*Project, *http.Response, error) {
	var project Project
	resp, err := service.client.Get(fmt.Sprintf("project/%v", projectIdOrKey), &project)
	if err != nil {
		return nil, resp, err
	}
	return &project, resp, nil
}

// ListVersions returns all versions of the given project
// in the order as returned by JIRA.
func (service *ProjectService) ListVersions(projectIdOrKey string) ([]*Version, *http.Response, error) {
	var versions []*Version
	resp, err := service.client.Get(fmt.Sprintf("project/%v/versions", projectIdOrKey), &versions)
	if err != nil {
		return nil, resp, err
	}
	return versions, resp, nil
}
