package apigw

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type yamlAPIGWConfig struct {
	Mode struct {
		Debug bool `yaml:"debug"`
	} `yaml:"mode"`
}

func optionFromAPIGWConfig(cfg yamlAPIGWConfig) Option {
	return OptionFunc(func(o *Options) {
		o.DebugMode = cfg.Mode.Debug
	})
}

func optionFromConfigBytes(b []byte) (Option, error) {
	var cfg yamlAPIGWConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	return optionFromAPIGWConfig(cfg), nil
}

// WithConfig parses YAML bytes following apigw.yml structure and applies it
// to Options. It panics if the YAML is invalid.
func WithConfig(yamlBytes []byte) Option {
	opt, err := optionFromConfigBytes(yamlBytes)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("apigw.WithConfig: %w", err))
		})
	}
	return opt
}

// WithConfigFile loads a YAML file and applies it to Options.
// It panics if the file cannot be read or YAML is invalid.
func WithConfigFile(path string) Option {
	b, err := os.ReadFile(path)
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("apigw.WithConfigFile(%s): %w", path, err))
		})
	}
	return WithConfig(b)
}
