package domain

import (
	"channel-request/errors"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	MessageConfigMissing = "⚠️ The private channel settings are not configured yet. Please contact a moderator."
	MessageConfigInvalid = "⚠️ The private channel category is misconfigured. Please contact a moderator."
)

// Outcome is what the requester gets back once an interaction is over.
type Outcome struct {
	State      InteractionState
	Channel    Channel
	Resolution Resolution
	Err        error
}

// Message renders the single reply of a terminal interaction.
func (o Outcome) Message() string {
	if o.State == StateFailed {
		return failureMessage(o.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Created channel %s.", o.Channel.Mention())
	if len(o.Resolution.Added) > 0 {
		added := lo.Map(o.Resolution.Added, func(id MemberID, _ int) string { return id.Mention() })
		fmt.Fprintf(&b, "\nAdded: %s", strings.Join(added, ", "))
	}
	if len(o.Resolution.Invalid) > 0 {
		invalid := lo.Map(o.Resolution.Invalid, func(raw string, _ int) string { return "`" + raw + "`" })
		fmt.Fprintf(&b, "\nNot found: %s", strings.Join(invalid, ", "))
	}
	return b.String()
}

func failureMessage(err error) string {
	switch {
	case err == nil:
		return "❌ The channel could not be created."
	case stderrors.Is(err, errors.ErrConfigMissing):
		return MessageConfigMissing
	case stderrors.Is(err, errors.ErrConfigInvalid):
		return MessageConfigInvalid
	default:
		return fmt.Sprintf("❌ The channel could not be created: %v", err)
	}
}
