package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aura-studio/bucketlist/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

// LambdaClient is the subset of the Lambda API the client depends on.
type LambdaClient interface {
	Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error)
}

// Client invokes a deployed bucketlist function synchronously and decodes
// the response envelope.
type Client struct {
	*Options

	mu     sync.Mutex
	cached LambdaClient
}

// NewClient creates a new client instance.
func NewClient(opts ...Option) *Client {
	return &Client{
		Options: NewOptions(opts...),
	}
}

// Call invokes the function with the given event and returns the decoded
// envelope. The event is marshaled as-is, with a correlation id stamped in
// for log correlation; the caller's map is never modified.
func (c *Client) Call(ctx context.Context, event handler.Event) (*handler.Response, error) {
	client, err := c.lambdaClient(ctx)
	if err != nil {
		return nil, err
	}

	payload := []byte("{}")
	if event != nil {
		payload, err = json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("marshal event: %w", err)
		}
	}

	correlationID := uuid.New().String()
	payload, err = sjson.SetBytes(payload, "__correlation_id__", correlationID)
	if err != nil {
		return nil, fmt.Errorf("stamp correlation id: %w", err)
	}

	timeout := c.DefaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName: aws.String(c.FunctionName),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", c.FunctionName, err)
	}
	if out.FunctionError != nil {
		return nil, fmt.Errorf("invoke %s: function error: %s", c.FunctionName, aws.ToString(out.FunctionError))
	}

	var resp handler.Response
	if err := json.Unmarshal(out.Payload, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

// CallAsync invokes the function in a goroutine and reports the outcome
// through the callback.
func (c *Client) CallAsync(ctx context.Context, event handler.Event, callback func(*handler.Response, error)) {
	go func() {
		resp, err := c.Call(ctx, event)
		if callback != nil {
			callback(resp, err)
		}
	}()
}

func (c *Client) lambdaClient(ctx context.Context) (LambdaClient, error) {
	if c.Options.LambdaClient != nil {
		return c.Options.LambdaClient, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		c.cached = awslambda.NewFromConfig(cfg)
	}
	return c.cached, nil
}
