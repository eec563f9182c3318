package handler

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigCandidates returns relative paths that will be checked (in order)
// when searching for a default handler config.
func DefaultConfigCandidates() []string {
	return []string{
		"handler.yaml",
		"handler.yml",
		filepath.FromSlash("handler/handler.yaml"),
		filepath.FromSlash("handler/handler.yml"),
	}
}

// FindDefaultConfigFile searches for a handler config file in a small set of
// well-known locations (CWD then executable directory).
func FindDefaultConfigFile() (string, error) {
	candidates := DefaultConfigCandidates()

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

	return "", fmt.Errorf("handler config not found (expected %v)", candidates)
}

// WithDefaultConfigFile finds and loads the default handler config file.
// It panics if the file cannot be found or read.
func WithDefaultConfigFile() Option {
	p, err := FindDefaultConfigFile()
	if err != nil {
		return OptionFunc(func(*Options) {
			panic(fmt.Errorf("handler.WithDefaultConfigFile: %w", err))
		})
	}
	return WithConfigFile(p)
}
