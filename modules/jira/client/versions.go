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
	"encoding/json"
	"fmt"
	"net/http"
)

// Resources -------------------------------------------------------------------

type Version struct {
	Id          string `json:"id,omitempty"`
	Self        string `json:"self,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
	ProjectId   int    `json:"projectId,omitempty"`
	Released    bool   `json:"released,omitempty"`
	Archived    bool   `json:"archived,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

// RemoteLink represents a remote link attached to a version.
// Link contains the JSON object exactly as it was stored.
type RemoteLink struct {
	Self string          `json:"self,omitempty"`
	Name string          `json:"name,omitempty"`
	Link json.RawMessage `json:"link,omitempty"`
}

type remoteLinkList struct {
	Links []*RemoteLink `json:"links"`
}

// The service -----------------------------------------------------------------

type VersionService struct {
	client *Client
}

func newVersionService(client *Client) *VersionService {
	return &VersionService{client}
}

// Get returns the version with the given ID.
func (service *VersionService) Get(id string) (*Version, *http.Response, error) {
	var version Version
	resp, err := service.client.Get(fmt.Sprintf("version/%v", id), &version)
	if err != nil {
		return nil, resp, err
	}
	return &version, resp, nil
}

// Create creates a new version.
func (service *VersionService) Create(version *Version) (*Version, *http.Response, error) {
	switch {
	case version.Name == "":
		return nil, nil, &ErrFieldNotSet{"Version.Name"}
	case version.Project == "" && version.ProjectId == 0:
		return nil, nil, &ErrFieldNotSet{"Version.Project"}
	}

	var createdVersion Version
	resp, err := service.client.Post("version", version, &createdVersion)
	if err != nil {
		return nil, resp, err
	}
	return &createdVersion, resp, nil
}

// Update updates the version with the specified ID as specified in the change request.
func (service *VersionService) Update(id string, change *Version) (*http.Response, error) {
	req, err := service.client.NewRequest("PUT", fmt.Sprintf("version/%v", id), change)
	if err != nil {
		return nil, err
	}
	return service.client.Do(req, nil)
}

// Delete deletes the version with the specified ID.
func (service *VersionService) Delete(id string) (*http.Response, error) {
	req, err := service.client.NewRequest("DELETE", fmt.Sprintf("version/%v", id), nil)
	if err != nil {
		return nil, err
	}
	return service.client.Do(req, nil)
}

// ListRemoteLinks returns the remote links attached to the given version.
func (service *VersionService) ListRemoteLinks(id string) ([]*RemoteLink, *http.Response, error) {
	var list remoteLinkList
	resp, err := service.client.Get(fmt.Sprintf("version/%v/remotelink", id), &list)
	if err != nil {
		return nil, resp, err
	}
	return list.Links, resp, nil
}

// CreateRemoteLink attaches the given JSON-encodable object to the version.
func (service *VersionService) CreateRemoteLink(id string, link interface{}) (*http.Response, error) {
	return service.client.Post(fmt.Sprintf("version/%v/remotelink", id), link, nil)
}
