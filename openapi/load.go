package openapi

import (
	"errors"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrNoProvider is returned by Cache.Document when no base-document producer
// was configured.
var ErrNoProvider = errors.New("openapi: no document provider configured")

// ErrDocumentShape is returned when decoded input is not a mapping at the top
// level.
var ErrDocumentShape = errors.New("openapi: document is not a mapping")

// ParseJSON decodes a JSON OpenAPI document.
func ParseJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentShape
	}
	return doc, nil
}

// ParseYAML decodes a YAML OpenAPI document, normalizing map[any]any nodes
// into string-keyed maps so the tree matches what JSON decoding produces.
func ParseYAML(data []byte) (Document, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	doc := stringMap(node)
	if doc == nil {
		return nil, ErrDocumentShape
	}
	return doc, nil
}

// EncodeJSON renders the document for serving.
func EncodeJSON(doc Document) ([]byte, error) {
	return json.Marshal(doc)
}

// ProviderFromJSON returns a Provider over fixed JSON bytes, typically an
// embedded spec file.
func ProviderFromJSON(data []byte) Provider {
	return func() (Document, error) { return ParseJSON(data) }
}

// ProviderFromYAML returns a Provider over fixed YAML bytes.
func ProviderFromYAML(data []byte) Provider {
	return func() (Document, error) { return ParseYAML(data) }
}

// stringMap converts YAML-decoded values (which may contain map[any]any) into
// string-keyed maps. Non-mapping input yields nil.
func stringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return stringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = normalizeValue(vv)
		}
		return out
	default:
		return v
	}
}
