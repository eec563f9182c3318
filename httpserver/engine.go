package httpserver

import (
	"github.com/aura-studio/bucketlist/handler"
	"github.com/gin-gonic/gin"
)

// Engine serves the handler over HTTP for local development. The same
// envelope the Lambda runtime would return is written as the response:
// the envelope's statusCode becomes the HTTP status and its body the
// JSON payload.
type Engine struct {
	*Options
	*gin.Engine
	h *handler.Engine
}

func NewEngine(opts ...ServeOption) *Engine {
	bag := &serveOptionBag{}
	bag.apply(opts...)

	options := NewOptions(bag.http...)
	if !options.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	e := &Engine{
		Options: options,
		Engine:  gin.Default(),
		h:       handler.NewEngine(bag.handler...),
	}

	e.InstallHandlers()

	return e
}

func (e *Engine) InstallHandlers() {
	e.GET("/", e.OK)
	e.GET("/health-check", e.OK)
	e.GET("/buckets", e.Buckets)
	e.POST("/buckets", e.Buckets)
}
