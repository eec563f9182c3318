package sqs

import (
	"encoding/json"

	"github.com/aura-studio/bucketlist/handler"
)

// Request is the message body consumed from the request queue. Every field
// is optional: a record with an empty body still triggers one enumeration.
type Request struct {
	CorrelationId    string        `json:"correlationId,omitempty"`
	ResponseQueueUrl string        `json:"responseQueueUrl,omitempty"`
	Event            handler.Event `json:"event,omitempty"`
}

// Reply is the message body sent to the response queue in reply mode.
type Reply struct {
	CorrelationId string           `json:"correlationId,omitempty"`
	Response      handler.Response `json:"response"`
}

func MarshalReply(r *Reply) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

func UnmarshalReply(b []byte) (*Reply, error) {
	var r Reply
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DecodeRequestBody parses a record body. A body that is not a JSON object
// yields an empty Request rather than an error: the triggering payload is
// opaque and never validated.
func DecodeRequestBody(body string) *Request {
	var r Request
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return &Request{}
	}
	return &r
}
