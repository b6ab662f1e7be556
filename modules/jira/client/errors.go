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
	"strings"
)

// Error is the error object returned by JIRA.
type Error struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

func (err *Error) String() string {
	msgs := append([]string(nil), err.ErrorMessages...)
	for field, msg := range err.Errors {
		msgs = append(msgs, fmt.Sprintf("%v: %v", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ErrAPI ----------------------------------------------------------------------

type ErrAPI struct {
	Response *http.Response
	Err      *Error
}

func (err *ErrAPI) Error() string {
	var (
		req    = err.Response.Request
		format = "%v %v -> %v"
		values = make([]interface{}, 0, 4)
	)
	values = append(values, req.Method, req.URL, err.Response.Status)

	if err.Err != nil {
		format = "%v %v -> %v (JIRA error = %v)"
		values = append(values, err.Err.String())
	}
	return fmt.Sprintf(format, values...)
}

// ErrFieldNotSet --------------------------------------------------------------

type ErrFieldNotSet struct {
	FieldName string
}

func (err *ErrFieldNotSet) Error() string {
	return fmt.Sprintf("required field '%v' is not set", err.FieldName)
}
