package tree

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound    ErrKind = iota // node or value is not in the tree
	ErrKindInvalid                    // malformed input (bad definition, bad argument)
	ErrKindUnsupported                // recognized but unsupported option
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindInvalid:
		return "invalid"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped) by the tree packages.
var (
	// ErrNotFound indicates the requested node is not reachable in the tree.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "node not found in tree"}
	// ErrInvalid indicates malformed input.
	ErrInvalid = &Error{Kind: ErrKindInvalid, Msg: "invalid tree input"}
	// ErrUnsupported indicates an option this module does not handle.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "unsupported tree option"}
)

// KindOf reports the ErrKind of the first *Error in err's chain.
// ok is false when err carries no typed error.
func KindOf(err error) (kind ErrKind, ok bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
