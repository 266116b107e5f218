package domain

import (
	"channel-request/errors"
	"fmt"
)

type InteractionState int

const (
	StateIdle InteractionState = iota
	StateAwaitingModalInput
	StateResolving
	StateProvisioning
	StateDone
	StateFailed
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingModalInput:
		return "awaiting_modal_input"
	case StateResolving:
		return "resolving"
	case StateProvisioning:
		return "provisioning"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (s InteractionState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

var transitions = map[InteractionState]InteractionState{
	StateIdle:               StateAwaitingModalInput,
	StateAwaitingModalInput: StateResolving,
	StateResolving:          StateProvisioning,
	StateProvisioning:       StateDone,
}

// Interaction follows one request from the button press to the reply.
type Interaction struct {
	ID    string
	State InteractionState
	Err   error
}

func NewInteraction(id string) *Interaction {
	return &Interaction{ID: id, State: StateIdle}
}

// Advance moves to the next state of the happy path.
func (i *Interaction) Advance(to InteractionState) error {
	if next, ok := transitions[i.State]; !ok || next != to {
		return fmt.Errorf("%w: %s -> %s", errors.ErrIllegalTransition, i.State, to)
	}
	i.State = to
	return nil
}

// Fail ends the interaction from any non terminal state and keeps the cause.
func (i *Interaction) Fail(cause error) error {
	if i.State.Terminal() {
		return fmt.Errorf("%w: %s -> %s", errors.ErrIllegalTransition, i.State, StateFailed)
	}
	i.State = StateFailed
	i.Err = cause
	return nil
}
