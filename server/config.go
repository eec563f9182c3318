package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aura-studio/bucketlist/apigw"
	"github.com/aura-studio/bucketlist/handler"
	"github.com/aura-studio/bucketlist/httpserver"
	"github.com/aura-studio/bucketlist/sqs"
	yaml "gopkg.in/yaml.v2"
)

type yamlServerConfig struct {
	Mode    string `yaml:"mode"`
	Addr    string `yaml:"addr"`
	Handler any    `yaml:"handler"`
	SQS     any    `yaml:"sqs"`
	APIGW   any    `yaml:"apigw"`
	HTTP    any    `yaml:"http"`
}

type Option interface {
	Apply(*Options)
}

type Options struct {
	Mode    string
	Addr    string
	Handler []handler.Option
	SQS     []sqs.Option
	APIGW   []apigw.Option
	HTTP    []httpserver.Option
}

type serveOptionFunc func(*Options)

func (f serveOptionFunc) Apply(o *Options) { f(o) }

// WithMode selects the serving mode: lambda (default), apigw, sqs or http.
func WithMode(mode string) Option {
	return serveOptionFunc(func(o *Options) {
		o.Mode = mode
	})
}

// WithAddr sets the listen address for http mode.
func WithAddr(addr string) Option {
	return serveOptionFunc(func(o *Options) {
		o.Addr = addr
	})
}

// WithHandlerOption appends a handler option regardless of mode.
func WithHandlerOption(opt handler.Option) Option {
	return serveOptionFunc(func(o *Options) {
		if opt != nil {
			o.Handler = append(o.Handler, opt)
		}
	})
}

type serveConfigOption struct {
	mode       string
	addr       string
	handlerOpt handler.Option
	sqsOpt     sqs.Option
	apigwOpt   apigw.Option
	httpOpt    httpserver.Option
}

func (o serveConfigOption) Apply(opts *Options) {
	if o.mode != "" {
		opts.Mode = o.mode
	}
	if o.addr != "" {
		opts.Addr = o.addr
	}
	if o.handlerOpt != nil {
		opts.Handler = append(opts.Handler, o.handlerOpt)
	}
	if o.sqsOpt != nil {
		opts.SQS = append(opts.SQS, o.sqsOpt)
	}
	if o.apigwOpt != nil {
		opts.APIGW = append(opts.APIGW, o.apigwOpt)
	}
	if o.httpOpt != nil {
		opts.HTTP = append(opts.HTTP, o.httpOpt)
	}
}

// WithServeConfig parses YAML bytes following server.yml structure.
func WithServeConfig(yamlBytes []byte) Option {
	var cfg yamlServerConfig
	if err := yaml.Unmarshal(yamlBytes, &cfg); err != nil {
		panic(fmt.Errorf("server.WithServeConfig: %w", err))
	}

	var handlerOpt handler.Option
	if cfg.Handler != nil {
		b, err := yaml.Marshal(cfg.Handler)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		handlerOpt = handler.WithConfig(b)
	}

	var sqsOpt sqs.Option
	if cfg.SQS != nil {
		b, err := yaml.Marshal(cfg.SQS)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		sqsOpt = sqs.WithConfig(b)
	}

	var apigwOpt apigw.Option
	if cfg.APIGW != nil {
		b, err := yaml.Marshal(cfg.APIGW)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		apigwOpt = apigw.WithConfig(b)
	}

	var httpOpt httpserver.Option
	if cfg.HTTP != nil {
		var httpCfg struct {
			Mode struct {
				Debug bool `yaml:"debug"`
			} `yaml:"mode"`
		}
		b, err := yaml.Marshal(cfg.HTTP)
		if err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		if err := yaml.Unmarshal(b, &httpCfg); err != nil {
			panic(fmt.Errorf("server.WithServeConfig: %w", err))
		}
		httpOpt = httpserver.WithDebugMode(httpCfg.Mode.Debug)
	}

	return serveConfigOption{
		mode:       cfg.Mode,
		addr:       cfg.Addr,
		handlerOpt: handlerOpt,
		sqsOpt:     sqsOpt,
		apigwOpt:   apigwOpt,
		httpOpt:    httpOpt,
	}
}

// WithServeConfigFile loads a YAML file and applies it as an Option.
func WithServeConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("server.WithServeConfigFile(%s): %w", path, err))
	}
	return WithServeConfig(b)
}

// DefaultServeConfigCandidates returns relative paths that will be checked (in order)
// when searching for a default server config.
func DefaultServeConfigCandidates() []string {
	return []string{
		"bucketlist.yaml",
		"bucketlist.yml",
		"server.yaml",
		"server.yml",
		"bootstrap.yaml",
		"bootstrap.yml",
		"app.yaml",
		"app.yml",
		"config.yaml",
		"config.yml",
	}
}

// FindDefaultServeConfigFile searches for a server config file in a small set of
// well-known locations (CWD then executable directory).
func FindDefaultServeConfigFile() (string, error) {
	candidates := DefaultServeConfigCandidates()

	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		for _, rel := range candidates {
			p := rel
			if dir != "." {
				p = filepath.Join(dir, rel)
			}
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, nil
			}
		}
	}

	return "", fmt.Errorf("server config not found (expected %v)", candidates)
}

// WithDefaultServeConfigFile finds and loads the default server config file.
func WithDefaultServeConfigFile() Option {
	p, err := FindDefaultServeConfigFile()
	if err != nil {
		panic(fmt.Errorf("server.WithDefaultServeConfigFile: %w", err))
	}
	return WithServeConfigFile(p)
}
