package github

import "errors"

var ErrVersionNotBound = errors.New("the publisher is not bound to any version")
