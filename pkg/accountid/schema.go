package accountid

import (
	invopop "github.com/invopop/jsonschema"
	swaggest "github.com/swaggest/jsonschema-go"
)

// Schema metadata shared by both generators. The grammar is deliberately
// not published as a regex pattern; consumers get the length bounds and
// must call Validate for the rest.
const (
	schemaTitle       = "AccountID"
	schemaDescription = "NEAR account identifier: 2-64 characters of lowercase " +
		"alphanumerics and the separators '.', '-' and '_'"
)

// JSONSchema exposes the account ID to the invopop/jsonschema reflector
// (JSON Schema 2020-12) as a bounded string node. A struct embedding an
// AccountID field gets this schema for the field automatically.
//
// This method and PrepareJSONSchema serve two incompatible schema
// libraries; a call site chooses exactly one by choosing its reflector.
func (AccountID) JSONSchema() *invopop.Schema {
	minLen := uint64(MinLen)
	maxLen := uint64(MaxLen)
	return &invopop.Schema{
		Type:        "string",
		Title:       schemaTitle,
		Description: schemaDescription,
		MinLength:   &minLen,
		MaxLength:   &maxLen,
	}
}

// PrepareJSONSchema exposes the account ID to the swaggest/jsonschema-go
// reflector (JSON Schema draft-07) as a bounded string node.
func (AccountID) PrepareJSONSchema(schema *swaggest.Schema) error {
	schema.WithType(swaggest.String.Type())
	schema.WithTitle(schemaTitle)
	schema.WithDescription(schemaDescription)
	schema.WithMinLength(MinLen)
	schema.WithMaxLength(MaxLen)
	return nil
}
