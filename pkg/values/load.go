package values

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// Parse decodes a YAML or JSON values document. An empty document yields empty Values.
func Parse(contents []byte) (Values, error) {
	v := Values{}
	if err := yaml.Unmarshal(contents, &v); err != nil {
		return nil, errors.Wrap(err, "parsing values")
	}
	if v == nil {
		// A document of just "null" or comments.
		v = Values{}
	}
	return v, nil
}

// Load reads the values file at path.
func Load(path string) (Values, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading values file %s", path)
	}
	v, err := Parse(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "in values file %s", path)
	}
	return v, nil
}

// DeepCopy returns a copy of v sharing no mappings or sequences with it.
//
// v must only contain JSON-compatible values, which is always the case for Values from Parse or
// Load. Give each concurrently running check its own copy since Get and Set modify Values in place.
// The copy of a nil v is empty, never nil.
func DeepCopy(v Values) Values {
	if v == nil {
		return Values{}
	}
	return runtime.DeepCopyJSON(v)
}
