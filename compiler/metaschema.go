package compiler

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const metaSchemaURL = "https://json-schema.org/draft/2020-12/schema"

// metaChecker validates schema documents against the JSON Schema
// meta-schema before compilation. The meta-schemas for the standard drafts
// ship with the jsonschema package, so no network access is needed.
type metaChecker struct {
	schema *jsonschema.Schema
}

func newMetaChecker() (*metaChecker, error) {
	compiled, err := jsonschema.NewCompiler().Compile(metaSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile meta-schema: %w", err)
	}
	return &metaChecker{schema: compiled}, nil
}

func (m *metaChecker) check(schema map[string]any) error {
	// Round-trip through JSON so numeric types match what the validator
	// expects.
	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}
	return m.schema.Validate(normalized)
}
