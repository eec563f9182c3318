package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aura-studio/bucketlist/handler"
	"github.com/aws/aws-sdk-go-v2/aws"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/tidwall/gjson"
)

type stubS3Client struct {
	names []string
	err   error
}

func (s *stubS3Client) ListBuckets(ctx context.Context, params *s3sdk.ListBucketsInput, optFns ...func(*s3sdk.Options)) (*s3sdk.ListBucketsOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := &s3sdk.ListBucketsOutput{}
	for _, name := range s.names {
		out.Buckets = append(out.Buckets, s3types.Bucket{Name: aws.String(name)})
	}
	return out, nil
}

func TestHealthCheck(t *testing.T) {
	e := NewEngine(Handler(handler.WithS3Client(&stubS3Client{})))

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health-check", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("body = %q, want OK", w.Body.String())
	}
}

func TestBucketsGet(t *testing.T) {
	e := NewEngine(Handler(handler.WithS3Client(&stubS3Client{names: []string{"alpha", "beta"}})))

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/buckets?source=local", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if gjson.Get(body, "message").String() != "Successfully retrieved buckets" {
		t.Errorf("body = %s", body)
	}
	buckets := gjson.Get(body, "buckets").Array()
	if len(buckets) != 2 || buckets[1].String() != "beta" {
		t.Errorf("buckets = %s", body)
	}
}

func TestBucketsPostFailure(t *testing.T) {
	e := NewEngine(Handler(handler.WithS3Client(&stubS3Client{err: errors.New("Access Denied")})))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/buckets", strings.NewReader(`{"source":"local"}`))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if gjson.Get(w.Body.String(), "message").String() != "Error listing buckets: Access Denied" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestBucketsPostOpaqueBody(t *testing.T) {
	e := NewEngine(Handler(handler.WithS3Client(&stubS3Client{names: []string{"alpha"}})))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/buckets", strings.NewReader("not json"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
