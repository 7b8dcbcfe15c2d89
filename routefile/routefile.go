package routefile

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned by Parse for documents with no content.
var ErrEmptyDocument = errors.New("routefile: empty document")

// File is a decoded route table document.
type File struct {
	Defaults Defaults `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Routes   []Entry  `json:"routes" yaml:"routes"`
}

// Defaults holds table-wide settings.
type Defaults struct {
	// ActionMethod overrides the method name the table applies to action
	// descriptors that omit one.
	ActionMethod string `json:"actionMethod,omitempty" yaml:"actionMethod,omitempty"`
}

// IsZero reports whether no defaults are set.
func (d Defaults) IsZero() bool {
	return d == Defaults{}
}

// Entry is one route record in a document.
type Entry struct {
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Origin  string         `json:"origin,omitempty" yaml:"origin,omitempty"`
	Path    string         `json:"path" yaml:"path"`
	Action  string         `json:"action" yaml:"action"`
	Params  ParamMap       `json:"params,omitempty" yaml:"params,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// ParamMap holds action parameters keyed by integer index. Documents may
// write the keys as integers or as strings; both decode to the same map.
type ParamMap map[int]any

// UnmarshalYAML decodes a mapping node, converting scalar keys to integers
// regardless of how the document spells them.
func (p *ParamMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("routefile: params must be a mapping, got YAML node kind %d", node.Kind)
	}
	m := make(ParamMap, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, err := strconv.Atoi(node.Content[i].Value)
		if err != nil {
			return fmt.Errorf("routefile: param key %q is not an integer", node.Content[i].Value)
		}
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		m[key] = value
	}
	*p = m
	return nil
}

// Parse decodes data as a route table document. The document is checked
// against the package's schema before the typed decode, so field names,
// value types, and param keys are all verified up front.
func Parse(data []byte) (*File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("routefile: parse document: %w", err)
	}
	if doc == nil {
		return nil, ErrEmptyDocument
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("routefile: decode document: %w", err)
	}
	return &f, nil
}

// Load reads and parses the route table document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("routefile: %w", err)
	}
	return Parse(data)
}
