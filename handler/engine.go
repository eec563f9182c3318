package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// S3Client is the subset of the S3 API the engine depends on.
type S3Client interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// Engine is the core engine for handling bucket enumeration invocations.
// Every invocation outcome is expressed through the Response envelope;
// Invoke never returns a non-nil error.
type Engine struct {
	*Options

	running atomic.Int32

	mu     sync.Mutex
	cached S3Client
}

// NewEngine creates a new Engine instance with the given options.
// The engine starts in running state.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Options: NewOptions(opts...),
	}
	e.running.Store(1)
	return e
}

// Start starts the engine, allowing it to accept new invocations.
func (e *Engine) Start() {
	e.running.Store(1)
}

// Stop stops the engine, causing it to reject new invocations.
func (e *Engine) Stop() {
	e.running.Store(0)
}

// IsRunning returns true if the engine is currently running.
func (e *Engine) IsRunning() bool {
	return e.running.Load() == 1
}

// Invoke handles one invocation: it logs the received event, lists the
// buckets visible to the ambient identity, and returns the envelope.
// Failures are captured into a 500 envelope and never propagate; the
// error result exists only to satisfy the Lambda handler signature and
// is always nil.
func (e *Engine) Invoke(ctx context.Context, event Event) (Response, error) {
	id := e.logReceived(ctx, event)

	if !e.IsRunning() {
		return failureResponse("engine is stopped"), nil
	}

	names, err := e.listBuckets(ctx)
	if err != nil {
		log.Printf("[Handler] %s Error listing buckets: %v", id, err)
		return failureResponse(err.Error()), nil
	}

	if e.DebugMode {
		log.Printf("[Handler] %s Retrieved %d buckets", id, len(names))
	}

	return Response{
		StatusCode: 200,
		Body: Body{
			Message: "Successfully retrieved buckets",
			Buckets: names,
		},
	}, nil
}

func failureResponse(msg string) Response {
	return Response{
		StatusCode: 500,
		Body: Body{
			Message: "Error listing buckets: " + msg,
		},
	}
}

// listBuckets performs the single enumeration round trip and projects
// the descriptors to names in listing order. Panics inside the client
// surface as errors.
func (e *Engine) listBuckets(ctx context.Context) (names []string, err error) {
	defer func() {
		if v := recover(); v != nil {
			names = nil
			err = fmt.Errorf("panic: %v", v)
		}
	}()

	client, err := e.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	names = make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

// s3Client returns the client to use for this invocation. An injected
// client always wins; otherwise a client is built from the ambient
// identity, cached across invocations only in reuse mode.
func (e *Engine) s3Client(ctx context.Context) (S3Client, error) {
	if e.Options.S3Client != nil {
		return e.Options.S3Client, nil
	}

	if !e.ReuseMode {
		return newDefaultClient(ctx)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cached == nil {
		client, err := newDefaultClient(ctx)
		if err != nil {
			return nil, err
		}
		e.cached = client
	}
	return e.cached, nil
}

func newDefaultClient(ctx context.Context) (S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// logReceived records the incoming event verbatim and returns the
// invocation id used to tag subsequent log lines. Logging never aborts
// the invocation.
func (e *Engine) logReceived(ctx context.Context, event Event) (id string) {
	defer func() {
		if recover() != nil && id == "" {
			id = "-"
		}
	}()

	id = invocationID(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Handler] %s Received event: %v", id, event)
		return id
	}
	log.Printf("[Handler] %s Received event: %s", id, data)

	if e.DebugMode {
		if cid := gjson.GetBytes(data, "__correlation_id__"); cid.Exists() {
			log.Printf("[Handler] %s Correlation id: %s", id, cid.String())
		}
	}
	return id
}

// invocationID prefers the Lambda request id when the runtime supplies
// one, falling back to a fresh uuid for local serving modes.
func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}
