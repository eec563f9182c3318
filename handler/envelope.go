package handler

import "encoding/json"

// Event is the invocation payload supplied by the Lambda runtime.
// It is treated as an opaque document: nothing in it is validated or
// interpreted, it is only logged. The engine never mutates it.
type Event map[string]any

// Body is the structured record carried in every Response.
// Buckets is nil on failure and non-nil (possibly empty) on success.
type Body struct {
	Message string   `json:"message"`
	Buckets []string `json:"buckets,omitempty"`
}

// MarshalJSON keeps the envelope shape stable across outcomes: a non-nil
// empty bucket list serializes as [], while a nil list omits the key.
func (b Body) MarshalJSON() ([]byte, error) {
	type body struct {
		Message string    `json:"message"`
		Buckets *[]string `json:"buckets,omitempty"`
	}
	out := body{Message: b.Message}
	if b.Buckets != nil {
		out.Buckets = &b.Buckets
	}
	return json.Marshal(out)
}

// Response is the envelope returned for every invocation outcome.
// StatusCode is 200 on success and 500 on enumeration failure; no other
// status codes are produced.
type Response struct {
	StatusCode int  `json:"statusCode"`
	Body       Body `json:"body"`
}
