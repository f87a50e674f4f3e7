package openapi

// Schema is a minimal JSON Schema representation, just enough to describe the
// error envelope component. Keep this struct small and extend incrementally.
type Schema struct {
	Type       string             `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Ref        string             `json:"$ref,omitempty"`
}

// envelopeSchema describes the envelope shape:
// {"error": {"code": string, "details": [{"field", "message", "type"?}]}}.
func envelopeSchema() *Schema {
	detail := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"field":   {Type: "string"},
			"message": {Type: "string"},
			"type":    {Type: "string"},
		},
		Required: []string{"field", "message"},
	}
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"error": {
				Type: "object",
				Properties: map[string]*Schema{
					"code":    {Type: "string"},
					"details": {Type: "array", Items: detail},
				},
				Required: []string{"code", "details"},
			},
		},
		Required: []string{"error"},
	}
}
