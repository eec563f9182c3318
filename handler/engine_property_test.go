package handler

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any listing result, including the empty one, the envelope is
// 200 and carries exactly the returned names in order.
func TestEnvelopePreservesListingOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(42)

	properties := gopter.NewProperties(parameters)

	properties.Property("success envelope mirrors the listing in order", prop.ForAll(
		func(names []string) bool {
			e := NewEngine(WithS3Client(&mockS3Client{names: names}))

			resp, err := e.Invoke(context.Background(), Event{})
			if err != nil {
				t.Logf("Invoke returned error: %v", err)
				return false
			}
			if resp.StatusCode != 200 {
				t.Logf("StatusCode = %d", resp.StatusCode)
				return false
			}
			if resp.Body.Buckets == nil {
				return false
			}
			if len(names) == 0 {
				return len(resp.Body.Buckets) == 0
			}
			return reflect.DeepEqual(resp.Body.Buckets, names)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property: for any failure message, the envelope is 500, the message carries
// the failure description, and no error escapes the call.
func TestEnvelopeCapturesAnyFailure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(42)

	properties := gopter.NewProperties(parameters)

	properties.Property("failure envelope carries the description", prop.ForAll(
		func(msg string) bool {
			e := NewEngine(WithS3Client(&mockS3Client{err: errors.New(msg)}))

			resp, err := e.Invoke(context.Background(), Event{})
			if err != nil {
				t.Logf("Invoke returned error: %v", err)
				return false
			}
			if resp.StatusCode != 500 {
				return false
			}
			if !strings.HasPrefix(resp.Body.Message, "Error listing buckets: ") {
				return false
			}
			return strings.HasSuffix(resp.Body.Message, msg)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
