package client

import (
	// Stdlib
	"fmt"
	"net/http"
)

// Error is the error object returned by the Podio API.
type Error struct {
	Code        string `json:"error,omitempty"`
	Description string `json:"error_description,omitempty"`
}

type ErrAPI struct {
	Response *http.Response
	Err      *Error
}

func (err *ErrAPI) Error() string {
	req := err.Response.Request
	return fmt.Sprintf("%v %v -> %v (%v: %v)",
		req.Method, req.URL, err.Response.Status, err.Err.Code, err.Err.Description)
}
