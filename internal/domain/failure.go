package domain

import "errors"

// ErrAssertion is wrapped by every Failure so callers can match assertion
// failures with errors.Is.
var ErrAssertion = errors.New("assertion failed")

// Failure is the record carried by a failed assertion. The message is fully
// rendered when the Failure is built.
type Failure struct {
	message string
}

// NewFailure builds a Failure from a source location and expression text.
func NewFailure(at, expr string) *Failure {
	return &Failure{message: at + expr}
}

// NewValueFailure builds a Failure whose message carries an expected/actual
// detail line. An empty detail yields the same message as NewFailure.
func NewValueFailure(at, expr, detail string) *Failure {
	return &Failure{message: at + expr + detail}
}

// Error returns the rendered failure message.
func (f *Failure) Error() string {
	if f == nil {
		return ErrAssertion.Error()
	}
	return f.message
}

// Unwrap returns ErrAssertion.
func (f *Failure) Unwrap() error {
	return ErrAssertion
}

// CaseFailure ties a logged failure message to the test case that produced it.
type CaseFailure struct {
	Name     string
	Location string
	Index    int
	Message  string
}
