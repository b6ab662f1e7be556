package modules

import (
	// Stdlib
	"fmt"
)

// ErrChannelNotFound is returned when the channel with the specified ID
// cannot be found in the list of available channels.
type ErrChannelNotFound struct {
	ChannelId string
}

func (err *ErrChannelNotFound) Error() string {
	return fmt.Sprintf("channel '%v' not found", err.ChannelId)
}
