package handler

import "github.com/mohae/deepcopy"

type Option interface {
	Apply(o *Options)
}

type OptionFunc func(*Options)

func (f OptionFunc) Apply(o *Options) { f(o) }

type Options struct {
	S3Client  S3Client
	ReuseMode bool
	DebugMode bool
}

var defaultOptions = &Options{
	S3Client:  nil,
	ReuseMode: false,
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

// WithS3Client injects the storage client used for enumeration. When
// unset, the engine builds one from the ambient identity.
func WithS3Client(client S3Client) Option {
	return OptionFunc(func(o *Options) {
		o.S3Client = client
	})
}

// WithReuseMode caches the default client across invocations within the
// same process. The cache carries no business state.
func WithReuseMode(reuse bool) Option {
	return OptionFunc(func(o *Options) {
		o.ReuseMode = reuse
	})
}

func WithDebugMode(debug bool) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = debug
	})
}
