package sqs

import "github.com/aura-studio/bucketlist/handler"

type ServeOption interface {
	apply(*serveOptionBag)
}

type serveOptionBag struct {
	sqs     []Option
	handler []handler.Option
}

func (b *serveOptionBag) apply(opts ...ServeOption) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(b)
		}
	}
}

type sqsServeOption struct{ opt Option }

func (o sqsServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.sqs = append(b.sqs, o.opt)
	}
}

type handlerServeOption struct{ opt handler.Option }

func (o handlerServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.handler = append(b.handler, o.opt)
	}
}

func SQS(opt Option) ServeOption { return sqsServeOption{opt: opt} }

func Handler(opt handler.Option) ServeOption { return handlerServeOption{opt: opt} }
