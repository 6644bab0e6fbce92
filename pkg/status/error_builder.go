package status

import (
	"fmt"
	"strings"
)

// ErrorBuilders handle the oft-duplicated logic we use for generating error messages.
//
// Each Error has a unique code, "ESS" followed by four digits. Errors with the same code share a
// strong unifying feature (e.g. two deployables claim the same manifest), but may include
// variations. If you would use essentially the same explanation and suggest the same fix for the
// problem, reuse the ErrorBuilder for that code. The four digits of an error code have no meaning
// except:
// - 1000, InternalError, and
// - 9999, UndocumentedError.
//
// Construct a new ErrorBuilder by passing in a code to NewErrorBuilder. If the code is not unique,
// the code will panic when packages are loaded.
//
// var myErrorBuilder = NewErrorBuilder("1234").Sprint("a naming problem")
//
// Libraries should not directly expose ErrorBuilders, but keep them package private and instead
// provide functions that tell callers the correct number and position of formatting arguments.
//
// func MyError(name string, count int) Error {
//   return myErrorBuilder.Sprintf("problem with %q when count is %d", name, count).Build()
// }
//
// func MyDeployableError(left, right string) DeployableError {
//   return myErrorBuilder.Sprint("both claim the manifest").BuildWithDeployables(left, right)
// }

// ErrorBuilder constructs complex, structured error messages.
type ErrorBuilder interface {
	// Build returns the constructed Error.
	Build() Error

	// BuildWithDeployables adds the passed deployable names to the error in a structured way. If
	// the set of passed names is empty, returns nil.
	BuildWithDeployables(names ...string) DeployableError

	// Sprint wraps the ErrorBuilder with a message, and returns the result.
	Sprint(message string) ErrorBuilder

	// Sprintf wraps the ErrorBuilder with a formatted message, and returns the result.
	Sprintf(format string, a ...interface{}) ErrorBuilder

	// Wrap wraps toWrap with the ErrorBuilder. The resulting Error returns toWrap if Cause() is called.
	// If toWrap is nil, the final Error returned by Build() is nil.
	Wrap(toWrap error) ErrorBuilder
}

// NewErrorBuilder returns an ErrorBuilder that can be used to generate errors. Registers this
// call with the passed unique code. Panics if there is an error code collision.
func NewErrorBuilder(code string) ErrorBuilder {
	register(code)
	return errorBuilder{error: baseErrorImpl{
		code: code,
	}}
}

// errorBuilder constructs complex error messages. Use NewErrorBuilder to register a new code.
type errorBuilder struct {
	error Error
}

// Build implements ErrorBuilder.
func (eb errorBuilder) Build() Error {
	return eb.error
}

// BuildWithDeployables implements ErrorBuilder.
func (eb errorBuilder) BuildWithDeployables(names ...string) DeployableError {
	if len(names) == 0 {
		return nil
	}
	return deployableErrorImpl{
		underlying:  eb.error,
		deployables: names,
	}
}

// Sprint implements ErrorBuilder.
func (eb errorBuilder) Sprint(message string) ErrorBuilder {
	checkMessage(message)
	return errorBuilder{error: messageErrorImpl{
		underlying: eb.error,
		message:    message,
	}}
}

// Sprintf implements ErrorBuilder.
func (eb errorBuilder) Sprintf(format string, a ...interface{}) ErrorBuilder {
	return eb.Sprint(fmt.Sprintf(format, a...))
}

// Wrap implements ErrorBuilder.
func (eb errorBuilder) Wrap(toWrap error) ErrorBuilder {
	if toWrap == nil {
		return nilErrorBuilder{}
	}
	return errorBuilder{error: wrappedErrorImpl{
		underlying: eb.error,
		wrapped:    toWrap,
	}}
}

// checkMessage reports messages that would render badly once joined with other parts.
func checkMessage(message string) {
	if strings.HasSuffix(message, "\n") || strings.HasSuffix(message, ".") {
		reportMisuse(fmt.Sprintf("error message %q must not end in a period or newline", message))
	}
}

// nilErrorBuilder represents an ErrorBuilder that will return nil when built.
type nilErrorBuilder struct{}

// Build implements ErrorBuilder.
func (n nilErrorBuilder) Build() Error {
	return nil
}

// BuildWithDeployables implements ErrorBuilder.
func (n nilErrorBuilder) BuildWithDeployables(names ...string) DeployableError {
	return nil
}

// Sprint implements ErrorBuilder.
func (n nilErrorBuilder) Sprint(message string) ErrorBuilder {
	return n
}

// Sprintf implements ErrorBuilder.
func (n nilErrorBuilder) Sprintf(format string, a ...interface{}) ErrorBuilder {
	return n
}

// Wrap implements ErrorBuilder.
func (n nilErrorBuilder) Wrap(toWrap error) ErrorBuilder {
	return n
}
