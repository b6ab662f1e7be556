package client

import (
	// Stdlib
	"fmt"
	"net/http"
)

// Status is a status message posted into a Podio space.
type Status struct {
	Id    int64  `json:"status_id,omitempty"`
	Value string `json:"value,omitempty"`
	Link  string `json:"link,omitempty"`
}

type StatusService struct {
	client *Client
}

// Create posts a new status message into the given space.
func (service *StatusService) Create(spaceId, value string) (*Status, *http.Response, error) {
	req, err := service.client.NewRequest("POST", fmt.Sprintf("status/space/%v/", spaceId), M{
		"value": value,
	})
	if err != nil {
		return nil, nil, err
	}

	var status Status
	resp, err := service.client.Do(req, &status)
	if err != nil {
		return nil, resp, err
	}
	return &status, resp, nil
}

// Delete deletes the given status message.
func (service *StatusService) Delete(statusId string) (*http.Response, error) {
	req, err := service.client.NewRequest("DELETE", fmt.Sprintf("status/%v", statusId), nil)
	if err != nil {
		return nil, err
	}
	return service.client.Do(req, nil)
}
