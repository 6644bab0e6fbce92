package status

import (
	"fmt"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

// MultiError represents a collection of errors.
type MultiError interface {
	error
	Errors() []Error
}

// Append returns m with err and errs added, flattening any MultiError or Aggregate among them.
// Returns nil if there is nothing to hold.
func Append(m MultiError, err error, errs ...error) MultiError {
	result := &multiError{}

	switch m.(type) {
	case nil:
		// No errors to begin with.
	case *multiError:
		result.errs = append(result.errs, m.Errors()...)
	default:
		for _, e := range m.Errors() {
			result.add(e)
		}
	}

	result.add(err)
	for _, e := range errs {
		result.add(e)
	}

	if len(result.errs) == 0 {
		return nil
	}
	return result
}

var _ MultiError = (*multiError)(nil)

// multiError is an error that contains multiple errors.
type multiError struct {
	errs []Error
}

// add flattens err into m. Plain errors become Undocumented.
func (m *multiError) add(err error) {
	switch e := err.(type) {
	case nil:
		// No error to add if nil.
	case Error:
		m.errs = append(m.errs, e)
	case MultiError:
		m.errs = append(m.errs, e.Errors()...)
	case utilerrors.Aggregate:
		for _, er := range e.Errors() {
			m.add(er)
		}
	default:
		m.errs = append(m.errs, undocumented(err))
	}
}

// Error implements error.
func (m *multiError) Error() string {
	return FormatError(m)
}

// Errors implements MultiError.
func (m *multiError) Errors() []Error {
	if m == nil || len(m.errs) == 0 {
		return nil
	}
	return m.errs
}

// FormatError formats every distinct error contained in e, sorted by message and numbered, one
// per paragraph. Returns the empty string if e contains no errors.
func FormatError(e error) string {
	m := toMultiError(e)
	if m == nil || len(m.Errors()) == 0 {
		return ""
	}

	msgs := sets.NewString()
	for _, err := range m.Errors() {
		msgs.Insert(err.Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s)\n", msgs.Len())
	for i, msg := range msgs.List() {
		fmt.Fprintf(&sb, "\n\n[%d] %s\n", i+1, msg)
	}
	return sb.String()
}

func toMultiError(e error) MultiError {
	if e == nil {
		return nil
	}
	if me, ok := e.(MultiError); ok {
		return me
	}
	return Append(nil, e)
}
