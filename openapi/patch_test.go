package openapi_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	validware "github.com/reoring/validware"
	"github.com/reoring/validware/openapi"
)

func sampleDoc() openapi.Document {
	return openapi.Document{
		"openapi": "3.1.0",
		"info":    map[string]any{"title": "items", "version": "0.1.0"},
		"paths": map[string]any{
			"/items/": map[string]any{
				"parameters": []any{map[string]any{"name": "page", "in": "query"}},
				"post": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"description": "OK"},
						"422": map[string]any{"description": "Unprocessable Entity"},
					},
				},
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"description": "OK"},
					},
				},
			},
			"/health": map[string]any{
				"get": map[string]any{},
			},
		},
	}
}

func operation(t *testing.T, doc openapi.Document, path, method string) map[string]any {
	t.Helper()
	op, ok := doc["paths"].(map[string]any)[path].(map[string]any)[method].(map[string]any)
	if !ok {
		t.Fatalf("no operation %s %s", method, path)
	}
	return op
}

func TestPatch_Renames422(t *testing.T) {
	doc := openapi.Patch(sampleDoc(), "")
	responses := operation(t, doc, "/items/", "post")["responses"].(map[string]any)
	if _, ok := responses["422"]; ok {
		t.Fatalf("422 must be gone, got %v", responses)
	}
	entry, ok := responses["400"].(map[string]any)
	if !ok {
		t.Fatalf("400 must exist, got %v", responses)
	}
	if entry["description"] != "Validation Error" {
		t.Fatalf("description = %v", entry["description"])
	}
	media := entry["content"].(map[string]any)["application/json"].(map[string]any)
	ref := media["schema"].(map[string]any)["$ref"].(string)
	if !strings.HasSuffix(ref, openapi.SchemaName) {
		t.Fatalf("ref = %q", ref)
	}
	env, ok := media["example"].(validware.Envelope)
	if !ok || env.Error.Code != validware.DefaultErrorCode {
		t.Fatalf("example = %#v", media["example"])
	}
	if _, ok := responses["200"]; !ok {
		t.Fatalf("unrelated responses must survive")
	}
}

func TestPatch_InsertsSynthetic400(t *testing.T) {
	doc := openapi.Patch(sampleDoc(), "CUSTOM_CODE")
	responses := operation(t, doc, "/items/", "get")["responses"].(map[string]any)
	entry, ok := responses["400"].(map[string]any)
	if !ok {
		t.Fatalf("synthetic 400 missing: %v", responses)
	}
	media := entry["content"].(map[string]any)["application/json"].(map[string]any)
	env := media["example"].(validware.Envelope)
	if env.Error.Code != "CUSTOM_CODE" {
		t.Fatalf("example code = %q", env.Error.Code)
	}

	// an operation with no response table at all gains one
	responses = operation(t, doc, "/health", "get")["responses"].(map[string]any)
	if _, ok := responses["400"]; !ok {
		t.Fatalf("missing response table must be created")
	}
}

func TestPatch_RegistersComponent(t *testing.T) {
	doc := openapi.Patch(sampleDoc(), "")
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas[openapi.SchemaName]; !ok {
		t.Fatalf("component schema missing: %v", schemas)
	}
}

func TestPatch_Idempotent(t *testing.T) {
	doc := openapi.Patch(sampleDoc(), "")
	before, err := openapi.EncodeJSON(doc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	after, err := openapi.EncodeJSON(openapi.Patch(doc, ""))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("second patch changed the document:\n%s\nvs\n%s", before, after)
	}
}

func TestPatch_ToleratesOddShapes(t *testing.T) {
	doc := openapi.Document{
		"paths": map[string]any{
			"/weird": "not a map",
			"/odd": map[string]any{
				"post": map[string]any{"responses": "not a map"},
			},
		},
	}
	out := openapi.Patch(doc, "")
	if out == nil {
		t.Fatalf("patch must return the document")
	}
	if openapi.Patch(nil, "") != nil {
		t.Fatalf("nil document passes through")
	}
}

func TestCache_MemoizesAndRetries(t *testing.T) {
	calls := 0
	fail := true
	cache := openapi.NewCache(func() (openapi.Document, error) {
		calls++
		if fail {
			return nil, errors.New("generator down")
		}
		return sampleDoc(), nil
	}, "")

	if _, err := cache.Document(); err == nil {
		t.Fatalf("expected provider failure to surface")
	}
	fail = false
	doc, err := cache.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc2, err := cache.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("provider calls = %d, want 2 (one failure, one success)", calls)
	}
	if reflect.ValueOf(doc).Pointer() != reflect.ValueOf(doc2).Pointer() {
		t.Fatalf("cache must return the identical document")
	}
	responses := operation(t, doc, "/items/", "post")["responses"].(map[string]any)
	if _, ok := responses["400"]; !ok {
		t.Fatalf("cached document must be patched")
	}

	cache.Reset()
	if _, err := cache.Document(); err != nil {
		t.Fatalf("unexpected error after reset: %v", err)
	}
	if calls != 3 {
		t.Fatalf("reset must rebuild, calls = %d", calls)
	}
}

func TestCache_NoProvider(t *testing.T) {
	cache := openapi.NewCache(nil, "")
	if _, err := cache.Document(); !errors.Is(err, openapi.ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}
