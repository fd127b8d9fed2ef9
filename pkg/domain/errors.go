package domain

import "errors"

// ErrorKind classifies a GenerationError.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota + 1
	KindInvalidFormat
	KindInvalidGeneration
	KindInvalidExportation
	KindInvalidLayout
	KindInvalidMachine
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindInvalidGeneration:
		return "InvalidGeneration"
	case KindInvalidExportation:
		return "InvalidExportation"
	case KindInvalidLayout:
		return "InvalidLayout"
	case KindInvalidMachine:
		return "InvalidMachine"
	}
	return "Unknown"
}

// GenerationError is the error returned by generator operations. Message is
// the user-facing text; Err optionally carries the underlying cause.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + " " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, so callers can test
// errors.Is(err, domain.ErrInvalidLayout) on any wrapped GenerationError.
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	if t.Message == "" && t.Err == nil {
		return t.Kind == e.Kind
	}
	return t == e
}

var (
	ErrInvalidInput       = &GenerationError{Kind: KindInvalidInput}
	ErrInvalidFormat      = &GenerationError{Kind: KindInvalidFormat}
	ErrInvalidGeneration  = &GenerationError{Kind: KindInvalidGeneration}
	ErrInvalidExportation = &GenerationError{Kind: KindInvalidExportation}
	ErrInvalidLayout      = &GenerationError{Kind: KindInvalidLayout}
	ErrInvalidMachine     = &GenerationError{Kind: KindInvalidMachine}
)

// NewError builds a GenerationError of the given kind.
func NewError(kind ErrorKind, message string) *GenerationError {
	return &GenerationError{Kind: kind, Message: message}
}

// WrapError builds a GenerationError that keeps cause in its chain.
func WrapError(kind ErrorKind, message string, cause error) *GenerationError {
	return &GenerationError{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the kind of the first GenerationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind, true
	}
	return 0, false
}
