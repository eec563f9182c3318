package sqs

import (
	"github.com/aws/aws-lambda-go/lambda"
)

// engine is the global engine variable for the sqs module.
var engine *Engine

// Serve creates an Engine and starts the Lambda handler for the SQS
// event source.
func Serve(opts ...ServeOption) {
	engine = NewEngine(opts...)
	lambda.Start(engine.Invoke)
}

// Close stops the Engine gracefully.
func Close() {
	if engine != nil {
		engine.Stop()
	}
}
