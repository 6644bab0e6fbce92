// Package values reads and writes properties of deployables in chart values.
//
// Values are the nested structure the chart renders from: mappings are map[string]interface{},
// sequences are []interface{} and everything else is a scalar. Both Get and Set modify the
// Values they are passed, so concurrent checks must each work on their own copy (see DeepCopy).
package values

import (
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"k8s.io/klog/v2"
)

// Values is the root of a chart values structure.
type Values = map[string]interface{}

// ValuesTypeErrorCode is the error code for values whose structure doesn't allow a path to be
// followed.
const ValuesTypeErrorCode = "2001"

var valuesTypeError = status.NewErrorBuilder(ValuesTypeErrorCode)

// TypeError reports that the value at keys has the wrong shape for the requested operation.
func TypeError(keys []string, want string, got interface{}) status.Error {
	return valuesTypeError.Sprintf("values at %q must be %s but are %T",
		strings.Join(keys, "."), want, got).Build()
}

// Get returns the value at the read side of path.
//
// The boolean is false when path has no read side: the property is not supported for this
// deployable and (nil, false, nil) is returned. Otherwise missing intermediate mappings are created
// as Get walks the path, and if the final key is absent defaultValue is stored there and returned.
// A nil defaultValue stores an empty mapping. Get therefore always leaves the path present in v.
func Get(v Values, path Path, defaultValue interface{}) (interface{}, bool, error) {
	if !path.Readable() {
		return nil, false, nil
	}
	if v == nil {
		return nil, true, TypeError(nil, "a mapping", v)
	}
	if len(path.ReadPath) == 0 {
		return v, true, nil
	}

	parent, err := walk(v, path.ReadPath)
	if err != nil {
		return nil, true, err
	}
	key := path.ReadPath[len(path.ReadPath)-1]
	if existing, found := parent[key]; found {
		return existing, true, nil
	}
	if defaultValue == nil {
		defaultValue = map[string]interface{}{}
	}
	parent[key] = defaultValue
	return defaultValue, true, nil
}

// Set stores value at the write side of path.
//
// If path has no write side Set does nothing and returns nil; deployables that take a property
// from their parent can't set it themselves and callers need not know which those are. Missing
// intermediate mappings are created. At the final key a mapping is merged key-by-key over any
// existing mapping, a sequence is appended to any existing sequence and a scalar replaces what was
// there. Only map[string]interface{} and []interface{} count as a mapping and a sequence; typed Go
// containers such as []string or map[string]string are scalars and replace the existing value.
//
// A nil v has nowhere to store value and is a type error.
func Set(v Values, path Path, value interface{}) error {
	if !path.Writable() {
		klog.V(4).Infof("ignoring set of unwritable path %s", path)
		return nil
	}
	if v == nil {
		return TypeError(nil, "a mapping", v)
	}
	if len(path.WritePath) == 0 {
		m, ok := value.(map[string]interface{})
		if !ok {
			return TypeError(nil, "a mapping", value)
		}
		merge(v, m)
		return nil
	}

	parent, err := walk(v, path.WritePath)
	if err != nil {
		return err
	}
	key := path.WritePath[len(path.WritePath)-1]
	existing, found := parent[key]

	switch typed := value.(type) {
	case map[string]interface{}:
		if !found {
			existing = map[string]interface{}{}
		}
		m, ok := existing.(map[string]interface{})
		if !ok || m == nil {
			return TypeError(path.WritePath, "a mapping", existing)
		}
		merge(m, typed)
		parent[key] = m
	case []interface{}:
		if !found {
			existing = []interface{}{}
		}
		s, ok := existing.([]interface{})
		if !ok {
			return TypeError(path.WritePath, "a sequence", existing)
		}
		parent[key] = append(s, typed...)
	default:
		parent[key] = value
	}
	return nil
}

// walk returns the mapping holding the last key of keys, creating empty mappings for any of the
// other keys that are missing.
func walk(v Values, keys []string) (map[string]interface{}, error) {
	current := v
	for i, key := range keys[:len(keys)-1] {
		next, found := current[key]
		if !found {
			created := map[string]interface{}{}
			current[key] = created
			current = created
			continue
		}
		m, ok := next.(map[string]interface{})
		if !ok || m == nil {
			return nil, TypeError(keys[:i+1], "a mapping", next)
		}
		current = m
	}
	return current, nil
}

func merge(dst, src map[string]interface{}) {
	for k, v := range src {
		dst[k] = v
	}
}
