package validware

// Package validware turns request-validation failures into a stable JSON
// error envelope served with HTTP 400, and patches generated OpenAPI
// documents so operations advertise 400 instead of the frameworks' default
// 422. It provides:
//
// - A Location/Issue error model (field paths with body/query/path/header
//   categories, dotted/bracketed rendering, JSON Pointer interop)
// - A never-fail envelope builder with degraded per-item fallbacks
// - An adapter for go-playground/validator field errors
// - An OpenAPI patcher with a process-lifetime cache (package openapi)
// - Drop-in integrations for echo and gin (middleware/echo, middleware/gin)
//
// Design policy:
// - Keep the pure core in the root package; framework glue lives under
//   middleware/ and never leaks into the core.
// - The core carries no logger; degraded paths log through the host
//   framework's logger inside the integrations.
//
// Typical usage (echo):
//
//	e := echo.New()
//	echomw.Setup(e, middleware.NewConfig())
