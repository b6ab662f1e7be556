package assignCmd

import "errors"

var ErrAssignFailed = errors.New("some issues could not be assigned")
