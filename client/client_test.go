package client

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/aura-studio/bucketlist/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/tidwall/gjson"
)

type mockLambdaClient struct {
	payload  []byte
	funcErr  *string
	err      error
	received *awslambda.InvokeInput
}

func (m *mockLambdaClient) Invoke(ctx context.Context, params *awslambda.InvokeInput, optFns ...func(*awslambda.Options)) (*awslambda.InvokeOutput, error) {
	m.received = params
	if m.err != nil {
		return nil, m.err
	}
	return &awslambda.InvokeOutput{
		Payload:       m.payload,
		FunctionError: m.funcErr,
	}, nil
}

func envelopeJSON(t *testing.T, resp handler.Response) []byte {
	t.Helper()
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestClientCall(t *testing.T) {
	want := handler.Response{
		StatusCode: 200,
		Body:       handler.Body{Message: "Successfully retrieved buckets", Buckets: []string{"alpha", "beta"}},
	}
	mock := &mockLambdaClient{payload: envelopeJSON(t, want)}

	c := NewClient(
		WithLambdaClient(mock),
		WithFunctionName("bucketlist"),
	)

	resp, err := c.Call(context.Background(), handler.Event{"source": "cli"})
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if !reflect.DeepEqual(*resp, want) {
		t.Errorf("Call = %+v, want %+v", *resp, want)
	}

	if aws.ToString(mock.received.FunctionName) != "bucketlist" {
		t.Errorf("FunctionName = %q", aws.ToString(mock.received.FunctionName))
	}
	payload := string(mock.received.Payload)
	if gjson.Get(payload, "source").String() != "cli" {
		t.Errorf("payload missing event content: %s", payload)
	}
	if gjson.Get(payload, "__correlation_id__").String() == "" {
		t.Errorf("payload missing correlation id: %s", payload)
	}
}

func TestClientCallNilEvent(t *testing.T) {
	mock := &mockLambdaClient{payload: envelopeJSON(t, handler.Response{StatusCode: 200, Body: handler.Body{Buckets: []string{}}})}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("bucketlist"))

	if _, err := c.Call(context.Background(), nil); err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if !gjson.ValidBytes(mock.received.Payload) {
		t.Errorf("payload is not JSON: %s", mock.received.Payload)
	}
}

func TestClientCallFunctionError(t *testing.T) {
	mock := &mockLambdaClient{funcErr: aws.String("Unhandled")}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("bucketlist"))

	if _, err := c.Call(context.Background(), handler.Event{}); err == nil {
		t.Error("expected error on function error")
	}
}

func TestClientCallInvokeError(t *testing.T) {
	mock := &mockLambdaClient{err: errors.New("throttled")}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("bucketlist"))

	if _, err := c.Call(context.Background(), handler.Event{}); err == nil {
		t.Error("expected error on invoke failure")
	}
}

func TestClientCallDecodeFailureEnvelope(t *testing.T) {
	want := handler.Response{
		StatusCode: 500,
		Body:       handler.Body{Message: "Error listing buckets: Access Denied"},
	}
	mock := &mockLambdaClient{payload: envelopeJSON(t, want)}
	c := NewClient(WithLambdaClient(mock), WithFunctionName("bucketlist"))

	resp, err := c.Call(context.Background(), handler.Event{})
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", resp.StatusCode)
	}
	if resp.Body.Buckets != nil {
		t.Errorf("Buckets = %v, want nil", resp.Body.Buckets)
	}
}
