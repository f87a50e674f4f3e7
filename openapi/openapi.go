// Package openapi patches generated API documents so request-validation
// failures advertise HTTP 400 instead of the default 422, and memoizes the
// patched document for the process lifetime.
package openapi

// Document is a generic OpenAPI document tree (string-keyed maps all the way
// down). It is owned by the host application and patched in place.
type Document = map[string]any

// Provider produces the unpatched base document, typically from an embedded
// spec file or a generator. Passing the producer explicitly keeps the
// original accessor available to the patcher without shared mutable state.
type Provider func() (Document, error)
