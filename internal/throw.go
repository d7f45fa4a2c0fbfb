package internal

import "github.com/pkg/errors"

// The engine has no recoverable failures once its input is validated, so an
// invariant violation is a bug. Those are raised as panics carrying a
// TriangulateError, and the public API recovers them into an error wrapping
// ErrInternal. Any other panic is passed through untouched.

var ErrInternal = errors.New("internal triangulation fault")

type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string {
	return e.err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.err
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return errors.Wrap(ErrInternal, triangulateError.Error())
		}
		panic(r)
	}
	return nil
}
