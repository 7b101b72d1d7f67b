package softfloat

import "fmt"

// internalError reports a programmer-error condition: a nil receiver, or
// packed bits handed to an unpack routine that could not have been produced
// by this package's own Pack routines. It is never returned for ordinary
// arithmetic anomalies -- those are reported through the sticky exception
// flags on the Environment (see exceptions.go).
type internalError struct {
	data any
	msg  string
}

func (e *internalError) Error() string {
	return fmt.Sprintf("softfloat: internal error: %s: %v", e.msg, e.data)
}

func newInternalError(data any, msg string) error {
	return &internalError{data: data, msg: msg}
}
