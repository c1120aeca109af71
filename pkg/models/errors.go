package models

import "fmt"

// NotFoundError reports an operation that targeted a record that does not
// exist. It is always surfaced to the caller, never swallowed.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidStateError reports a transition that is not permitted from the
// record's current status. Current and Attempted are included so callers can
// render a meaningful message.
type InvalidStateError struct {
	Current   string
	Attempted string
	Reason    string
}

func (e *InvalidStateError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid transition from %q to %q", e.Current, e.Attempted)
}

// AuthorizationError reports a caller that is not the authorized actor for a
// provider-only or moderator-only operation.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	if e.Reason == "" {
		return "not authorized"
	}
	return e.Reason
}
