package sqs

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/aura-studio/bucketlist/handler"
	events "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSClient is the subset of the SQS API the engine depends on.
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Engine consumes SQS event-source batches. Each record triggers one
// enumeration; in reply mode the envelope is sent to the response queue
// named in the record body. Handler outcomes are never record failures,
// only decode and send errors are.
type Engine struct {
	*Options
	h         *handler.Engine
	running   atomic.Int32
	sqsClient SQSClient
}

// NewEngine creates a new Engine instance with the given options.
func NewEngine(opts ...ServeOption) *Engine {
	bag := &serveOptionBag{}
	bag.apply(opts...)

	e := &Engine{
		Options: NewOptions(bag.sqs...),
		h:       handler.NewEngine(bag.handler...),
	}
	if e.Options.SQSClient != nil {
		e.sqsClient = e.Options.SQSClient
	} else if e.ReplyMode {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			panic(err)
		}
		e.sqsClient = sqs.NewFromConfig(cfg)
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

// HandleSQSMessagesWithoutResponse fails the whole batch on any record failure.
func (e *Engine) HandleSQSMessagesWithoutResponse(ctx context.Context, ev events.SQSEvent) error {
	resp, err := e.handleSQSMessages(ctx, ev)
	if err != nil {
		return err
	}
	if len(resp.BatchItemFailures) > 0 {
		return fmt.Errorf("batch item failures: %d", len(resp.BatchItemFailures))
	}
	return nil
}

// HandleSQSMessagesWithResponse reports failing records individually for
// partial retry by the queue.
func (e *Engine) HandleSQSMessagesWithResponse(ctx context.Context, ev events.SQSEvent) (events.SQSEventResponse, error) {
	return e.handleSQSMessages(ctx, ev)
}

func (e *Engine) Invoke(ctx context.Context, ev events.SQSEvent) (events.SQSEventResponse, error) {
	if e.PartialMode {
		return e.HandleSQSMessagesWithResponse(ctx, ev)
	}
	return events.SQSEventResponse{}, e.HandleSQSMessagesWithoutResponse(ctx, ev)
}

func (e *Engine) handleSQSMessages(ctx context.Context, ev events.SQSEvent) (resp events.SQSEventResponse, err error) {
	for _, msg := range ev.Records {
		if e.running.Load() == 0 {
			if e.DebugMode {
				log.Printf("[SQS] Engine stopped, message %s failed", msg.MessageId)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
			continue
		}

		request := DecodeRequestBody(msg.Body)

		if e.DebugMode {
			log.Printf("[SQS] Request: %s %s", msg.MessageId, msg.Body)
		}

		envelope, _ := e.h.Invoke(ctx, request.Event)

		if e.DebugMode {
			log.Printf("[SQS] Response: %s %d %s", msg.MessageId, envelope.StatusCode, envelope.Body.Message)
		}

		// A reply is produced only when ReplyMode is on and the record
		// names a response queue.
		if !e.ReplyMode || request.ResponseQueueUrl == "" {
			continue
		}

		reply := &Reply{
			CorrelationId: request.CorrelationId,
			Response:      envelope,
		}
		b, merr := MarshalReply(reply)
		if merr != nil {
			if e.DebugMode {
				log.Printf("[SQS] Marshal reply for message %s error: %v", msg.MessageId, merr)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
			continue
		}

		if _, serr := e.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
			MessageBody: aws.String(string(b)),
			QueueUrl:    &request.ResponseQueueUrl,
		}); serr != nil {
			if e.DebugMode {
				log.Printf("[SQS] Send reply for message %s error: %v", msg.MessageId, serr)
			}
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: msg.MessageId})
			continue
		}
	}

	return resp, nil
}
