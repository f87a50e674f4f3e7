package openapi

import (
	validware "github.com/reoring/validware"
)

// SchemaName is the shared component schema patched responses reference.
const SchemaName = "ValidationErrorResponse"

const schemaRef = "#/components/schemas/" + SchemaName

var methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// Patch rewrites every operation's response table: an existing "422" entry is
// renamed to "400" with the fixed "Validation Error" description and a
// reference to the shared component schema; operations without one gain a
// synthetic "400" entry with the same content. The component schema is
// registered under components.schemas. The walk is tolerant: nodes that do
// not have the expected shape (parameter lists, vendor extensions) are
// skipped rather than panicking.
//
// Patch mutates doc, returns it, and is idempotent.
func Patch(doc Document, code string) Document {
	if doc == nil {
		return nil
	}
	if code == "" {
		code = validware.DefaultErrorCode
	}
	if paths, ok := doc["paths"].(map[string]any); ok {
		for _, pi := range paths {
			item, ok := pi.(map[string]any)
			if !ok {
				continue
			}
			for _, m := range methods {
				op, ok := item[m].(map[string]any)
				if !ok {
					continue
				}
				patchOperation(op, code)
			}
		}
	}
	ensureComponent(doc)
	return doc
}

func patchOperation(op map[string]any, code string) {
	responses, ok := op["responses"].(map[string]any)
	if !ok {
		responses = map[string]any{}
		op["responses"] = responses
	}
	if _, ok := responses["422"]; ok {
		delete(responses, "422")
		responses["400"] = validationResponse(code)
		return
	}
	if _, ok := responses["400"]; !ok {
		responses["400"] = validationResponse(code)
	}
}

func validationResponse(code string) map[string]any {
	return map[string]any{
		"description": "Validation Error",
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": schemaRef},
				"example": exampleEnvelope(code),
			},
		},
	}
}

func exampleEnvelope(code string) validware.Envelope {
	return validware.NewEnvelope(code, validware.Detail{
		Field:   "age",
		Message: "must be greater than 0",
		Type:    "gt",
	})
}

func ensureComponent(doc Document) {
	components, ok := doc["components"].(map[string]any)
	if !ok {
		components = map[string]any{}
		doc["components"] = components
	}
	schemas, ok := components["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		components["schemas"] = schemas
	}
	if _, ok := schemas[SchemaName]; !ok {
		schemas[SchemaName] = envelopeSchema()
	}
}
