package apigw

import (
	"context"
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/aura-studio/bucketlist/handler"
	events "github.com/aws/aws-lambda-go/events"
)

// Engine adapts API Gateway proxy requests to the handler contract. The
// proxy response carries the envelope's statusCode and its body encoded
// as JSON.
type Engine struct {
	*Options
	h       *handler.Engine
	running atomic.Int32
}

// NewEngine creates a new Engine instance with the given options.
func NewEngine(opts ...ServeOption) *Engine {
	bag := &serveOptionBag{}
	bag.apply(opts...)

	e := &Engine{
		Options: NewOptions(bag.apigw...),
		h:       handler.NewEngine(bag.handler...),
	}
	e.running.Store(1)
	return e
}

func (e *Engine) Start() {
	e.running.Store(1)
	e.h.Start()
}

func (e *Engine) Stop() {
	e.running.Store(0)
	e.h.Stop()
}

func (e *Engine) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke processes one proxy request. The request is projected to an
// opaque handler event; nothing in it is validated, and a body that is
// not a JSON object is passed through under the "body" key rather than
// rejected.
func (e *Engine) Invoke(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	event := eventFromRequest(req)

	resp, _ := e.h.Invoke(ctx, event)

	body, err := json.Marshal(resp.Body)
	if err != nil {
		// Body marshaling is total for our envelope; this path guards
		// against future body shapes only.
		if e.DebugMode {
			log.Printf("[APIGW] Marshal body error: %v", err)
		}
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Error listing buckets: ` + err.Error() + `"}`,
		}, nil
	}

	if e.DebugMode {
		log.Printf("[APIGW] Response: %d %s", resp.StatusCode, body)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func eventFromRequest(req events.APIGatewayProxyRequest) handler.Event {
	if req.Body != "" {
		var event handler.Event
		if err := json.Unmarshal([]byte(req.Body), &event); err == nil {
			return event
		}
		return handler.Event{"body": req.Body}
	}

	if len(req.QueryStringParameters) == 0 {
		return handler.Event{}
	}
	event := make(handler.Event, len(req.QueryStringParameters))
	for k, v := range req.QueryStringParameters {
		event[k] = v
	}
	return event
}
