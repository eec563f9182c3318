package server

import "testing"

func TestWithServeConfig(t *testing.T) {
	yml := `
mode: sqs
addr: ":9090"
handler:
  mode:
    debug: true
    reuse: true
sqs:
  mode:
    partial: true
    reply: true
`
	options := &Options{}
	WithServeConfig([]byte(yml)).Apply(options)

	if options.Mode != "sqs" {
		t.Errorf("Mode = %q, want sqs", options.Mode)
	}
	if options.Addr != ":9090" {
		t.Errorf("Addr = %q", options.Addr)
	}
	if len(options.Handler) != 1 {
		t.Errorf("Handler options = %d, want 1", len(options.Handler))
	}
	if len(options.SQS) != 1 {
		t.Errorf("SQS options = %d, want 1", len(options.SQS))
	}
	if len(options.APIGW) != 0 {
		t.Errorf("APIGW options = %d, want 0", len(options.APIGW))
	}
}

func TestWithServeConfigInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid YAML")
		}
	}()
	WithServeConfig([]byte("mode: ["))
}

func TestServeUnrecognizedMode(t *testing.T) {
	if err := Serve(WithMode("carrier-pigeon")); err == nil {
		t.Error("expected error for unrecognized mode")
	}
}

func TestWithModeAndAddr(t *testing.T) {
	options := &Options{}
	WithMode("http").Apply(options)
	WithAddr(":8081").Apply(options)

	if options.Mode != "http" || options.Addr != ":8081" {
		t.Errorf("options = %+v", options)
	}
}
