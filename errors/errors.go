package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrConfigMissing     = fmt.Errorf("configuration missing")
	ErrConfigInvalid     = fmt.Errorf("configuration invalid")
	ErrCreationFailed    = fmt.Errorf("channel creation failed")
	ErrInvalidRequest    = fmt.Errorf("invalid channel request")
	ErrIllegalTransition = fmt.Errorf("illegal interaction transition")
	ErrMemberNotFound    = fmt.Errorf("member not found")
	ErrNotInGuild        = fmt.Errorf("interaction outside of a guild")
)
