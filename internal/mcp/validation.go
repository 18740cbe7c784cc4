package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator wraps JSON Schema compilation and validation.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles a validator from a JSON schema definition.
func NewSchemaValidator(schemaMap map[string]interface{}) (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7 // MCP uses JSON Schema Draft 7

	schemaJSON, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Validate validates parameters against the compiled schema.
func (v *SchemaValidator) Validate(params interface{}) error {
	if err := v.schema.Validate(params); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("validation failed for %q: %s", ve.InstanceLocation, ve.Message)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Registry is the read-only tool catalog, with every declared input schema
// compiled at startup. A schema that fails to compile is a programming
// error surfaced before the server starts serving.
type Registry struct {
	tools      []Tool
	byName     map[string]Tool
	validators map[string]*SchemaValidator
}

// NewRegistry builds the registry from the static catalog.
func NewRegistry() (*Registry, error) {
	tools := Catalog()
	r := &Registry{
		tools:      tools,
		byName:     make(map[string]Tool, len(tools)),
		validators: make(map[string]*SchemaValidator, len(tools)),
	}

	for _, t := range tools {
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q in catalog", t.Name)
		}
		v, err := NewSchemaValidator(t.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", t.Name, err)
		}
		r.byName[t.Name] = t
		r.validators[t.Name] = v
	}

	return r, nil
}

// Tools returns the catalog in declaration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Lookup returns the descriptor for a tool name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// ValidateArgs validates an argument map against a tool's declared input
// schema. Used by the natural-language front end to vet model-extracted
// arguments before dispatch; the tool executor performs its own
// per-parameter checks with specific error messages.
func (r *Registry) ValidateArgs(name string, args map[string]interface{}) error {
	v, ok := r.validators[name]
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return v.Validate(map[string]interface{}(args))
}
