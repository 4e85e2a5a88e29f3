// Package baseline reads selection baselines from disk and watches them for
// changes. A baseline file holds the values that should be selected, either as
// a bare YAML/JSON list or under a "values" key:
//
//	- "111"
//	- "222"
//
//	values: ["111", "222"]
//
// An empty file, or a file whose list is empty, is a present-but-empty
// baseline: it clears the selection rather than leaving it uncontrolled. A
// mapping without a "values" list is malformed.
package baseline

import (
	"bytes"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/multicheck/internal/errors"
)

// valuesKey is the mapping key holding the list in the document form.
const valuesKey = "values"

// Load reads and parses the baseline file at path. A missing file is
// retryable only while its directory exists.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			_, dirErr := os.Stat(filepath.Dir(path))
			return nil, errors.NewBaselineError("values file does not exist", errors.NewNotFoundError("values file", path)).
				WithPath(path).
				WithRetryable(dirErr == nil)
		}
		return nil, errors.NewBaselineError(err.Error(), errors.ErrBaselineUnreadable).WithPath(path)
	}

	values, err := Parse(data)
	if err != nil {
		return nil, errors.NewBaselineError("cannot parse values file", err).WithPath(path)
	}
	return values, nil
}

// Parse decodes baseline data. The result is never nil. Every failure
// matches errors.ErrBaselineMalformed.
func Parse(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []string{}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrap(errors.ErrBaselineMalformed, err.Error())
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		return decodeList(root)
	case yaml.MappingNode:
		list, err := valuesNode(root)
		if err != nil {
			return nil, err
		}
		return decodeList(list)
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return []string{}, nil
		}
	}
	return nil, errors.Wrap(errors.ErrBaselineMalformed, "expected a list of values")
}

// valuesNode returns the node under the "values" key of a mapping. A null
// value is accepted as an empty list; any other key is a typo, not a
// request to clear the selection.
func valuesNode(mapping *yaml.Node) (*yaml.Node, error) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if key.Value != valuesKey {
			continue
		}
		switch {
		case value.Kind == yaml.SequenceNode:
			return value, nil
		case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
			return &yaml.Node{Kind: yaml.SequenceNode}, nil
		default:
			return nil, errors.Wrapf(errors.ErrBaselineMalformed, "line %d: %q must be a list", value.Line, valuesKey)
		}
	}
	return nil, errors.Wrapf(errors.ErrBaselineMalformed, "no %q key", valuesKey)
}

func decodeList(list *yaml.Node) ([]string, error) {
	values := []string{}
	if err := list.Decode(&values); err != nil {
		return nil, errors.Wrap(errors.ErrBaselineMalformed, err.Error())
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
