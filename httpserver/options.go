package httpserver

import (
	"github.com/aura-studio/bucketlist/handler"
	"github.com/mohae/deepcopy"
)

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	DebugMode bool
}

var defaultOptions = &Options{
	DebugMode: false,
}

func NewOptions(opts ...Option) *Options {
	options := deepcopy.Copy(defaultOptions).(*Options)
	options.init(opts...)
	return options
}

func (o *Options) init(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.Apply(o)
		}
	}
}

func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}

type ServeOption interface {
	apply(*serveOptionBag)
}

type serveOptionBag struct {
	http    []Option
	handler []handler.Option
}

func (b *serveOptionBag) apply(opts ...ServeOption) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(b)
		}
	}
}

type httpServeOption struct{ opt Option }

func (o httpServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.http = append(b.http, o.opt)
	}
}

type handlerServeOption struct{ opt handler.Option }

func (o handlerServeOption) apply(b *serveOptionBag) {
	if o.opt != nil {
		b.handler = append(b.handler, o.opt)
	}
}

func HTTP(opt Option) ServeOption { return httpServeOption{opt: opt} }

func Handler(opt handler.Option) ServeOption { return handlerServeOption{opt: opt} }
