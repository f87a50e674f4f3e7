// Package echomw integrates validware with the echo framework: validation
// failures surface as a 400 JSON envelope and the OpenAPI document is served
// patched.
package echomw

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	validware "github.com/reoring/validware"
	"github.com/reoring/validware/middleware"
	"github.com/reoring/validware/openapi"
)

// Setup wraps e's HTTPErrorHandler so validation failures answer 400 with the
// envelope while every other error keeps flowing to the previous handler.
// When e.Validator is unset it installs the validware validator, and when
// cfg.Schema is set it serves the patched document at cfg.SchemaPath.
func Setup(e *echo.Echo, cfg middleware.Config) {
	cfg = cfg.Default()
	if e.Validator == nil {
		e.Validator = NewValidator()
	}
	prev := e.HTTPErrorHandler
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		env, ok := classify(cfg, err)
		if !ok {
			if prev != nil {
				prev(err, c)
			}
			return
		}
		if werr := c.JSON(http.StatusBadRequest, env); werr != nil {
			c.Logger().Errorf("validware: writing error envelope: %v", werr)
		}
	}
	if cfg.Schema != nil {
		e.GET(cfg.SchemaPath, SchemaHandler(openapi.NewCache(cfg.Schema, cfg.ErrorCode)))
	}
}

// classify decides whether err is a validation failure and builds the
// envelope for it. Bind failures arrive as *echo.HTTPError with the cause in
// Internal; those degrade to the single "request" detail.
func classify(cfg middleware.Config, err error) (validware.Envelope, bool) {
	if iss, ok := cfg.Classify(err); ok {
		return validware.SafeEnvelope(iss, cfg.ErrorCode), true
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil &&
		(he.Code == http.StatusBadRequest || he.Code == http.StatusUnprocessableEntity) {
		return validware.SafeEnvelope(he.Internal, cfg.ErrorCode), true
	}
	return validware.Envelope{}, false
}

// SchemaHandler serves the memoized patched document from cache.
func SchemaHandler(cache *openapi.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := cache.Document()
		if err != nil {
			c.Logger().Errorf("validware: schema generation failed: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "schema unavailable")
		}
		buf, err := openapi.EncodeJSON(doc)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "schema unavailable")
		}
		return c.JSONBlob(http.StatusOK, buf)
	}
}
