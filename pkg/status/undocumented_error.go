package status

// UndocumentedErrorCode marks errors from outside the deployable model, such as a failed read of
// a values file, that have no code of their own.
const UndocumentedErrorCode = "9999"

var undocumentedError = NewErrorBuilder(UndocumentedErrorCode)

// UndocumentedErrorf returns an Undocumented Error with a formatted message.
func UndocumentedErrorf(format string, a ...interface{}) Error {
	return undocumentedError.Sprintf(format, a...).Build()
}

// UndocumentedError returns an Undocumented Error with the passed message.
func UndocumentedError(message string) Error {
	return undocumentedError.Sprint(message).Build()
}

func undocumented(err error) Error {
	return undocumentedError.Wrap(err).Build()
}
