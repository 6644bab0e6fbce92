// Package manifest reads the objects rendered from the chart and attributes them, and the
// containers they run, to deployables.
package manifest

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/element-hq/ess-helm-deployables/pkg/status"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
)

// ParseErrorCode is the error code for rendered manifests that can't be decoded.
const ParseErrorCode = "2007"

var parseError = status.NewErrorBuilder(ParseErrorCode)

// ParseError reports that a rendered document or object is malformed.
func ParseError(err error) status.Error {
	return parseError.Sprint("unable to parse rendered manifests").Wrap(err).Build()
}

func isEmptyYAMLDocument(document string) bool {
	lines := strings.Split(document, "\n")
	for _, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			// Ignore empty/whitespace-only lines.
			continue
		}
		if strings.TrimSpace(line) == "---" {
			// The reader keeps a separator that starts the input or follows another.
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			// Ignore comment lines, such as the "# Source:" lines helm template writes.
			continue
		}
		return false
	}
	return true
}

// Parse decodes the YAML documents in contents, as written by helm template. Documents are
// separated by lines holding only "---". Empty and comment-only documents are skipped.
func Parse(contents []byte) ([]*unstructured.Unstructured, error) {
	var result []*unstructured.Unstructured

	reader := yaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(contents)))
	for i := 0; ; i++ {
		document, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ParseError(errors.Wrapf(err, "document %d", i))
		}
		if isEmptyYAMLDocument(string(document)) {
			continue
		}

		var u unstructured.Unstructured
		_, _, err = scheme.Codecs.UniversalDeserializer().Decode(document, nil, &u)
		if err != nil {
			return nil, ParseError(errors.Wrapf(err, "document %d", i))
		}
		result = append(result, &u)
	}

	return result, nil
}

// Load reads and parses a file of rendered manifests. A JSON file holds a single object.
func Load(path string) ([]*unstructured.Unstructured, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifests from %s", path)
	}
	if filepath.Ext(path) != ".json" {
		return Parse(contents)
	}
	if len(contents) == 0 {
		return nil, nil
	}
	var u unstructured.Unstructured
	if err := u.UnmarshalJSON(contents); err != nil {
		return nil, ParseError(errors.Wrapf(err, "reading %s", path))
	}
	return []*unstructured.Unstructured{&u}, nil
}
