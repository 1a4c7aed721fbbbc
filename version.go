package jsonschemaform

// Draft identifies a JSON Schema draft by its meta-schema URI.
type Draft string

// Supported JSON Schema drafts.
const (
	// Draft4 is JSON Schema Draft 4.
	Draft4 Draft = "http://json-schema.org/draft-04/schema#"
	// Draft6 is JSON Schema Draft 6.
	Draft6 Draft = "http://json-schema.org/draft-06/schema#"
	// Draft7 is JSON Schema Draft 7.
	Draft7 Draft = "http://json-schema.org/draft-07/schema#"
	// Draft2019_09 is JSON Schema Draft 2019-09.
	Draft2019_09 Draft = "https://json-schema.org/draft/2019-09/schema"
	// Draft2020_12 is JSON Schema Draft 2020-12.
	Draft2020_12 Draft = "https://json-schema.org/draft/2020-12/schema"
)

// DefaultDraft is used when a schema document does not declare $schema.
const DefaultDraft = Draft2020_12

// String returns the meta-schema URI.
func (d Draft) String() string {
	return string(d)
}

// IsValid returns true if this is a supported draft.
func (d Draft) IsValid() bool {
	switch d {
	case Draft4, Draft6, Draft7, Draft2019_09, Draft2020_12:
		return true
	default:
		return false
	}
}

// DraftFromSchema resolves the draft declared by a schema document's
// $schema member, falling back to DefaultDraft when absent or unknown.
func DraftFromSchema(schema map[string]any) Draft {
	uri, ok := schema["$schema"].(string)
	if !ok {
		return DefaultDraft
	}
	d := Draft(uri)
	if !d.IsValid() {
		return DefaultDraft
	}
	return d
}
