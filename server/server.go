package server

import (
	"fmt"

	"github.com/aura-studio/bucketlist/apigw"
	"github.com/aura-studio/bucketlist/handler"
	"github.com/aura-studio/bucketlist/httpserver"
	"github.com/aura-studio/bucketlist/sqs"
)

// Serve starts the configured serving mode. The zero mode serves the bare
// Lambda handler contract.
func Serve(opts ...Option) error {
	options := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(options)
		}
	}

	switch options.Mode {
	case "http":
		serveOpts := make([]httpserver.ServeOption, 0, len(options.HTTP)+len(options.Handler))
		for _, opt := range options.HTTP {
			serveOpts = append(serveOpts, httpserver.HTTP(opt))
		}
		for _, opt := range options.Handler {
			serveOpts = append(serveOpts, httpserver.Handler(opt))
		}
		addr := options.Addr
		if addr == "" {
			addr = ":8080"
		}
		httpserver.Serve(addr, serveOpts...)
		return nil
	case "sqs":
		serveOpts := make([]sqs.ServeOption, 0, len(options.SQS)+len(options.Handler))
		for _, opt := range options.SQS {
			serveOpts = append(serveOpts, sqs.SQS(opt))
		}
		for _, opt := range options.Handler {
			serveOpts = append(serveOpts, sqs.Handler(opt))
		}
		sqs.Serve(serveOpts...)
		return nil
	case "apigw":
		serveOpts := make([]apigw.ServeOption, 0, len(options.APIGW)+len(options.Handler))
		for _, opt := range options.APIGW {
			serveOpts = append(serveOpts, apigw.APIGW(opt))
		}
		for _, opt := range options.Handler {
			serveOpts = append(serveOpts, apigw.Handler(opt))
		}
		apigw.Serve(serveOpts...)
		return nil
	case "lambda", "":
		handler.Serve(options.Handler...)
		return nil
	default:
		return fmt.Errorf("server: unrecognized mode: %q", options.Mode)
	}
}

func Close() {
	httpserver.Close()
	handler.Close()
	apigw.Close()
	sqs.Close()
}
