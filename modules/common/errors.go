package common

import "fmt"

// ErrChannelNotConfigured is returned when a channel is requested explicitly,
// but its configuration section is missing.
type ErrChannelNotConfigured struct {
	Channel string
}

func (err *ErrChannelNotConfigured) Error() string {
	return fmt.Sprintf("channel '%v' is not configured", err.Channel)
}
