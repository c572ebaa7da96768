package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds compiled request schemas keyed by Schema.Name.
var compiledSchemas = struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}{byName: make(map[string]*jsonschema.Schema)}

// validateResponse checks raw against schema. A nil schema accepts
// anything; every failure is an *ErrInvalidResponse carrying raw.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := compiled.Validate(inst); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %q: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	compiledSchemas.Lock()
	defer compiledSchemas.Unlock()

	if s, ok := compiledSchemas.byName[schema.Name]; ok {
		return s, nil
	}

	// The compiler wants a decoded JSON document, not Go map literals with
	// int values, so the definition takes a round trip through JSON.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", schema.Name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.byName[schema.Name] = s
	return s, nil
}
