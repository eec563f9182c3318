package apigw

import "github.com/aura-studio/bucketlist/handler"

type ServeOption interface {
	apply(*serveOptionBag)
}

type serveOptionBag struct {
	apigw   []Option
	handler []handler.Option
}

func (b *serveOptionBag) apply(opts ...ServeOption) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(b)
		}
	}
}

type apigwServeOption struct{ opt Option }

func (o apigwServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.apigw = append(b.apigw, o.opt)
	}
}

type handlerServeOption struct{ opt handler.Option }

func (o handlerServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.handler = append(b.handler, o.opt)
	}
}

func APIGW(opt Option) ServeOption { return apigwServeOption{opt: opt} }

func Handler(opt handler.Option) ServeOption { return handlerServeOption{opt: opt} }
