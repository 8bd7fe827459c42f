package provider

import (
	"fmt"
)

type Kind int

const (
	KindTransport Kind = iota + 1
	KindTimeout
	KindBadStatus
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindBadStatus:
		return "bad_status"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Error is the failure of one call to an external collaborator.
type Error struct {
	Provider string
	Kind     Kind
	Status   int
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindBadStatus:
		return fmt.Sprintf("%s: %s %d", e.Provider, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}
