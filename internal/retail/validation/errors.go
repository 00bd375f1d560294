package validation

import "errors"

var (
	ErrParse  = errors.New("value is not a number")
	ErrRange  = errors.New("value is out of range")
	ErrDomain = errors.New("invalid combination of values")
)

type Kind int

const (
	KindParse Kind = iota + 1
	KindRange
	KindDomain
)

// InputError is shown inline next to the calculator that produced it.
// Field is empty for domain errors, which concern a combination of inputs.
type InputError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	switch e.Kind {
	case KindParse:
		return ErrParse
	case KindRange:
		return ErrRange
	case KindDomain:
		return ErrDomain
	}
	return nil
}

func Domain(message string) *InputError {
	return &InputError{Kind: KindDomain, Message: message}
}

// MessageOf returns the inline text for err, falling back to err.Error().
func MessageOf(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	return err.Error()
}
