// Package ginmw integrates validware with the gin framework: validation
// failures attached to the context surface as a 400 JSON envelope and the
// OpenAPI document is served patched.
package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validware "github.com/reoring/validware"
	"github.com/reoring/validware/middleware"
	"github.com/reoring/validware/openapi"
)

// Setup installs the error-handling middleware on r and, when cfg.Schema is
// set, serves the patched document at cfg.SchemaPath.
func Setup(r *gin.Engine, cfg middleware.Config) {
	cfg = cfg.Default()
	r.Use(ErrorHandler(cfg))
	if cfg.Schema != nil {
		r.GET(cfg.SchemaPath, SchemaHandler(openapi.NewCache(cfg.Schema, cfg.ErrorCode)))
	}
}

// ErrorHandler converts validation failures recorded via c.Error into the
// 400 envelope after the handler chain runs. Handlers bind with the
// ShouldBind family and attach the error instead of writing a response,
// tagging bind failures so malformed bodies are caught too:
//
//	if err := c.ShouldBindJSON(&u); err != nil {
//		_ = c.Error(err).SetType(gin.ErrorTypeBind)
//		return
//	}
//
// Bind-typed errors that are not engine errors (malformed JSON, type
// mismatches) degrade to the single "request" detail.
func ErrorHandler(cfg middleware.Config) gin.HandlerFunc {
	cfg = cfg.Default()
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for _, ge := range c.Errors {
			if iss, ok := cfg.Classify(ge.Err); ok {
				c.JSON(http.StatusBadRequest, validware.SafeEnvelope(iss, cfg.ErrorCode))
				return
			}
		}
		if ge := c.Errors.ByType(gin.ErrorTypeBind).Last(); ge != nil {
			c.JSON(http.StatusBadRequest, validware.SafeEnvelope(ge.Err, cfg.ErrorCode))
		}
	}
}

// SchemaHandler serves the memoized patched document from cache.
func SchemaHandler(cache *openapi.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := cache.Document()
		if err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "schema unavailable")
			return
		}
		buf, err := openapi.EncodeJSON(doc)
		if err != nil {
			c.String(http.StatusInternalServerError, "schema unavailable")
			return
		}
		c.Data(http.StatusOK, "application/json", buf)
	}
}
