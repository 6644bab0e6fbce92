package status

import (
	"fmt"
	"strings"
)

// CodePrefix precedes every error code when an Error is printed.
const CodePrefix = "ESS"

// Error defines a deployable model error.
// These are the errors reported when the deployable forest is malformed or when a caller's values
// or manifests cannot be mapped back onto it.
type Error interface {
	error
	// Code is the four digit code unique to the kind of problem.
	Code() string
	// Body is the message without the code prefix.
	Body() string
	// Errors implements MultiError so that a single Error can be used wherever a MultiError is.
	Errors() []Error
}

// DeployableError defines a status error associated with one or more named deployables.
type DeployableError interface {
	Error
	Deployables() []string
}

// format formats the start of error messages consistently.
func format(err Error) string {
	return fmt.Sprintf("%s%s: %s", CodePrefix, err.Code(), err.Body())
}

// formatBody joins the non-empty parts of a message with sep.
func formatBody(left, sep, right string) string {
	switch {
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + sep + right
	}
}

// HasCode returns true if err, or any error it contains, has the passed code.
func HasCode(err error, code string) bool {
	m := toMultiError(err)
	if m == nil {
		return false
	}
	for _, e := range m.Errors() {
		if e.Code() == code {
			return true
		}
	}
	return false
}

func formatDeployables(names []string) string {
	if len(names) == 0 {
		return ""
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "deployables: " + strings.Join(quoted, ", ")
}
