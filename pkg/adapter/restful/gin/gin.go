// Package gin wraps the gin-gonic framework, so other packages may
// instantiate an engine with the middlewares which are selected by
// the configuration settings.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is the header which carries the request identity.
const RequestIDHeader = "X-Request-ID"

// Modes of a gin-gonic engine.
const (
	DebugMode   = gin.DebugMode
	ReleaseMode = gin.ReleaseMode
	TestMode    = gin.TestMode
)

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// SetMode switches the gin-gonic global mode. It should be called
// before instantiation of the engines.
func SetMode(mode string) {
	gin.SetMode(mode)
}

// Logger returns an access log middleware which writes to the default
// slog logger.
func Logger() HandlerFunc {
	return logger.New(slog.Default())
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

// RequestID returns a middleware which keeps the request identity from
// the X-Request-ID header (if it is a valid UUID) or generates a fresh
// one, and echoes it in the response headers.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Set(RequestIDHeader, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}
