package client

import (
	// Stdlib
	"fmt"
	"net/http"
)

// M is a shorthand for building JSON request bodies.
type M map[string]interface{}

// Reference types that can be commented on.
const (
	RefTypeStatus = "status"
	RefTypeItem   = "item"
)

type Comment struct {
	Id    int64  `json:"comment_id,omitempty"`
	Value string `json:"value,omitempty"`
}

type CommentService struct {
	client *Client
}

// Create adds a comment to the object identified by refType and refId.
func (service *CommentService) Create(refType, refId, value string) (*Comment, *http.Response, error) {
	req, err := service.client.NewRequest("POST", fmt.Sprintf("comment/%v/%v/", refType, refId), M{
		"value": value,
	})
	if err != nil {
		return nil, nil, err
	}

	var comment Comment
	resp, err := service.client.Do(req, &comment)
	if err != nil {
		return nil, resp, err
	}
	return &comment, resp, nil
}
