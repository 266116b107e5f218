package domain

import (
	"channel-request/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Modal field limits. The validate tags below must use the same values.
const (
	MaxChannelNameLength = 100
	MaxMembersLength     = 4000
)

// ChannelRequest is a submitted request modal.
type ChannelRequest struct {
	InteractionID string `validate:"required"`
	GuildID       string `validate:"required,numeric"`
	RequesterID   string `validate:"required,numeric"`
	RequesterName string
	Name          string `validate:"max=100"`
	Members       string `validate:"max=4000"`
}

// Validate checks the request shape. Both text fields are optional.
func (r ChannelRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}

// ChannelName is the requested name, or a name derived from the requester when the
// field was left empty.
func (r ChannelRequest) ChannelName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	if r.RequesterName != "" {
		return "private-" + r.RequesterName
	}
	return "private-" + r.RequesterID
}
