package routefile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON string

// schemaName is the resource name the embedded schema compiles under.
const schemaName = "routes.schema.json"

// ErrSchemaLoad is returned if schema compilation tries to fetch a remote
// document. The embedded schema is self-contained, so reaching the loader
// means the schema itself is broken.
var ErrSchemaLoad = errors.New("routefile: remote schemas are not supported")

type noopLoader struct{}

func (noopLoader) Load(string) (any, error) {
	return nil, ErrSchemaLoad
}

// documentSchema compiles the embedded schema on first use.
var documentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("routefile: parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	c.UseLoader(noopLoader{})

	if err := c.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("routefile: add schema resource: %w", err)
	}
	s, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("routefile: compile schema: %w", err)
	}
	return s, nil
})

// validateDocument checks a decoded document tree against the embedded
// schema. The tree is canonicalized through encoding/json first, so YAML
// mapping keys become strings and numbers take their JSON shape.
func validateDocument(doc any) error {
	s, err := documentSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(jsonValue(doc))
	if err != nil {
		return fmt.Errorf("routefile: canonicalize document: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("routefile: canonicalize document: %w", err)
	}

	if err := s.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &DocumentError{Causes: flattenCauses(verr)}
		}
		return fmt.Errorf("routefile: validate document: %w", err)
	}
	return nil
}

// jsonValue rewrites a YAML-decoded tree into the shapes encoding/json
// accepts. yaml.v3 decodes mappings with non-string keys into map[any]any,
// which encoding/json refuses; such keys are formatted to strings.
func jsonValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, value := range v {
			m[key] = jsonValue(value)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, value := range v {
			m[fmt.Sprint(key)] = jsonValue(value)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, value := range v {
			s[i] = jsonValue(value)
		}
		return s
	default:
		return v
	}
}

// DocumentError reports the schema violations found in a document.
type DocumentError struct {
	Causes []Cause
}

// Cause is a single schema violation and its location in the document.
type Cause struct {
	Location string
	Message  string
}

func (e *DocumentError) Error() string {
	var b strings.Builder
	b.WriteString("routefile: document does not match schema")
	for _, c := range e.Causes {
		fmt.Fprintf(&b, "\n  [%s] %s", c.Location, c.Message)
	}
	return b.String()
}

// flattenCauses walks the validation error tree and keeps the leaves,
// which carry the actual violation messages.
func flattenCauses(verr *jsonschema.ValidationError) []Cause {
	if len(verr.Causes) == 0 {
		return []Cause{{
			Location: "#/" + strings.Join(verr.InstanceLocation, "/"),
			Message:  verr.BasicOutput().Error.String(),
		}}
	}
	var causes []Cause
	for _, c := range verr.Causes {
		causes = append(causes, flattenCauses(c)...)
	}
	return causes
}
