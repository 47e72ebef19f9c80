package gift

import (
	"errors"
	"fmt"
)

// ErrInvalidAnswerValue is matched by every error returned from an answer constructor.
var ErrInvalidAnswerValue = errors.New("invalid answer value")

// ErrorKind tells which answer family rejected a value
type ErrorKind string

const (
	ErrorKindMath      ErrorKind = "math"
	ErrorKindTrueFalse ErrorKind = "true_false"
	ErrorKindChoice    ErrorKind = "choice"
	ErrorKindMatching  ErrorKind = "matching"
)

// AnswerValueError is returned when a raw value cannot build an answer
type AnswerValueError struct {
	Kind    ErrorKind
	Message string
}

func newAnswerValueError(kind ErrorKind, message string) *AnswerValueError {
	return &AnswerValueError{
		Kind:    kind,
		Message: message,
	}
}

func (e *AnswerValueError) Error() string {
	return fmt.Sprintf("%s answer: %s", e.Kind, e.Message)
}

func (e *AnswerValueError) Unwrap() error {
	return ErrInvalidAnswerValue
}
