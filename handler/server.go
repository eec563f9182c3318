package handler

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// engine is the global engine variable for the handler module.
var engine *Engine

// Serve creates an Engine and starts the Lambda handler.
// It registers the engine's Invoke method as the Lambda handler.
func Serve(opts ...Option) {
	engine = NewEngine(opts...)
	lambda.Start(engine.Invoke)
}

// Close stops the Engine gracefully.
func Close() {
	if engine != nil {
		engine.Stop()
	}
}
