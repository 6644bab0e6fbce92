package status

import (
	"github.com/pkg/errors"
)

// InternalErrorCode is the error code for Internal.
const InternalErrorCode = "1000"

// InternalErrorBuilder builds Internal errors.
//
// Internal errors represent conditions that should never happen, but that we check for so that we
// can control how the program terminates when these unexpected situations occur. As long as the
// deployable forest is built through its constructors, it should not be possible to trigger these.
var InternalErrorBuilder = NewErrorBuilder(InternalErrorCode).Sprint("internal error")

// InternalErrorf returns an Internal with a formatted message.
func InternalErrorf(format string, args ...interface{}) Error {
	return InternalErrorBuilder.Sprintf(format, args...).Build()
}

// InternalError returns an Internal with the string representation of the passed object.
func InternalError(message string) Error {
	return InternalErrorBuilder.Sprint(message).Build()
}

// InternalWrap returns an Internal wrapping an error.
func InternalWrap(err error) Error {
	return InternalErrorBuilder.Wrap(err).Build()
}

// InternalWrapf returns an Internal wrapping an error with a formatted message.
func InternalWrapf(err error, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}
	return InternalWrap(errors.Wrapf(err, format, args...))
}
