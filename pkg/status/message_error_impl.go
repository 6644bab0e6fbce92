package status

type baseErrorImpl struct {
	code string
}

var _ Error = baseErrorImpl{}

// Error implements error.
func (e baseErrorImpl) Error() string {
	return format(e)
}

// Is implements errors.Is. Errors are equivalent when they share a code.
func (e baseErrorImpl) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code() == e.code
}

// Code implements Error.
func (e baseErrorImpl) Code() string {
	return e.code
}

// Body implements Error.
func (e baseErrorImpl) Body() string {
	return ""
}

// Errors implements MultiError.
func (e baseErrorImpl) Errors() []Error {
	return []Error{e}
}

type messageErrorImpl struct {
	underlying Error
	message    string
}

var _ Error = messageErrorImpl{}

// Error implements error.
func (m messageErrorImpl) Error() string {
	return format(m)
}

// Code implements Error.
func (m messageErrorImpl) Code() string {
	return m.underlying.Code()
}

// Body implements Error.
func (m messageErrorImpl) Body() string {
	return formatBody(m.message, ": ", m.underlying.Body())
}

// Errors implements MultiError.
func (m messageErrorImpl) Errors() []Error {
	return []Error{m}
}

// Unwrap implements errors.Unwrap.
func (m messageErrorImpl) Unwrap() error {
	return m.underlying
}

type wrappedErrorImpl struct {
	underlying Error
	wrapped    error
}

var _ Error = wrappedErrorImpl{}

// Error implements error.
func (w wrappedErrorImpl) Error() string {
	return format(w)
}

// Is implements errors.Is.
func (w wrappedErrorImpl) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code() == w.Code()
}

// Code implements Error.
func (w wrappedErrorImpl) Code() string {
	return w.underlying.Code()
}

// Body implements Error.
func (w wrappedErrorImpl) Body() string {
	return formatBody(w.underlying.Body(), ": ", w.wrapped.Error())
}

// Errors implements MultiError.
func (w wrappedErrorImpl) Errors() []Error {
	return []Error{w}
}

// Cause implements causer.
func (w wrappedErrorImpl) Cause() error {
	return w.wrapped
}

// Unwrap implements errors.Unwrap.
func (w wrappedErrorImpl) Unwrap() error {
	return w.wrapped
}

type deployableErrorImpl struct {
	underlying  Error
	deployables []string
}

var _ DeployableError = deployableErrorImpl{}

// Error implements error.
func (d deployableErrorImpl) Error() string {
	return format(d)
}

// Code implements Error.
func (d deployableErrorImpl) Code() string {
	return d.underlying.Code()
}

// Body implements Error.
func (d deployableErrorImpl) Body() string {
	return formatBody(d.underlying.Body(), "\n\n", formatDeployables(d.deployables))
}

// Errors implements MultiError.
func (d deployableErrorImpl) Errors() []Error {
	return []Error{d}
}

// Deployables implements DeployableError.
func (d deployableErrorImpl) Deployables() []string {
	return d.deployables
}

// Unwrap implements errors.Unwrap.
func (d deployableErrorImpl) Unwrap() error {
	return d.underlying
}
