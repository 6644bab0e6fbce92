package values

import (
	"fmt"
	"strings"
)

// Path is the route through the values to a property of a deployable.
//
// WritePath is where the property is set and ReadPath is where the value that ends up in the
// deployable's manifests is read from. Either may be nil, meaning the property can't be written or
// read for the deployable. The two differ when a deployable inherits a property from the deployable
// that owns its configuration.
type Path struct {
	WritePath []string
	ReadPath  []string
}

// NotSupported returns a Path for a property that can be neither read nor written.
func NotSupported() Path {
	return Path{}
}

// ReadWrite returns a Path that is read and written at the same keys.
func ReadWrite(keys ...string) Path {
	return Path{
		WritePath: copyKeys(keys),
		ReadPath:  copyKeys(keys),
	}
}

// ReadElsewhere returns a Path for a property that is configured on a different deployable. The
// property can be read but not written.
func ReadElsewhere(keys ...string) Path {
	return Path{
		ReadPath: copyKeys(keys),
	}
}

// WithPropertyType returns a copy of the Path with the key of p appended to each side that is
// present.
func (p Path) WithPropertyType(propertyType PropertyType) Path {
	result := Path{}
	if p.WritePath != nil {
		result.WritePath = append(copyKeys(p.WritePath), propertyType.Key())
	}
	if p.ReadPath != nil {
		result.ReadPath = append(copyKeys(p.ReadPath), propertyType.Key())
	}
	return result
}

// Readable returns true if the Path has a read side.
func (p Path) Readable() bool {
	return p.ReadPath != nil
}

// Writable returns true if the Path has a write side.
func (p Path) Writable() bool {
	return p.WritePath != nil
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return fmt.Sprintf("write=%s read=%s", formatKeys(p.WritePath), formatKeys(p.ReadPath))
}

// copyKeys returns a non-nil copy of keys so a Path never aliases the caller's slice.
func copyKeys(keys []string) []string {
	result := make([]string, len(keys), len(keys)+1)
	copy(result, keys)
	return result
}

func formatKeys(keys []string) string {
	if keys == nil {
		return "<none>"
	}
	return strings.Join(keys, ".")
}
