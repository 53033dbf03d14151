// Package manifest loads batch registrations for the container from YAML.
//
//	params:
//	  age: 42
//	register:
//	  - App\Engine
//	  - App\Car
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-container/framework/container"
)

//go:embed schema.json
var schemaJSON []byte

// Parsed at init time - failure here means a corrupted embedded schema.
var manifestSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("manifest: parse schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		panic(fmt.Sprintf("manifest: add schema: %v", err))
	}
	if manifestSchema, err = compiler.Compile("schema.json"); err != nil {
		panic(fmt.Sprintf("manifest: compile schema: %v", err))
	}
}

// Manifest is one batch registration: every id in Register is pushed with
// the same Params.
type Manifest struct {
	Params   map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
	Register []string       `yaml:"register" json:"register"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the manifest schema and decodes it.
func Parse(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return FromDocument(raw)
}

// FromDocument validates an already decoded YAML or JSON document and
// converts it. JSON numbers decoded with UseNumber become int when integral.
func FromDocument(doc any) (*Manifest, error) {
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	obj := doc.(map[string]any)
	m := &Manifest{}
	if params, ok := obj["params"].(map[string]any); ok {
		m.Params = make(map[string]any, len(params))
		for k, v := range params {
			m.Params[k] = normalize(v)
		}
	}
	for _, id := range obj["register"].([]any) {
		m.Register = append(m.Register, id.(string))
	}
	return m, nil
}

// Validate checks a decoded JSON or YAML document against the manifest schema.
func Validate(doc any) error {
	return manifestSchema.Validate(doc)
}

// Apply registers every id in order with the shared params. The first
// failing registration is returned; earlier ones stay registered.
func (m *Manifest) Apply(c *container.Container) error {
	return c.MultiplePush(container.Params(m.Params), m.Register...)
}

func normalize(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	}
	return v
}
