package handler

import "testing"

func TestWithConfig(t *testing.T) {
	yml := `
mode:
  debug: true
  reuse: true
`
	o := NewOptions(WithConfig([]byte(yml)))
	if !o.DebugMode {
		t.Error("DebugMode should be true")
	}
	if !o.ReuseMode {
		t.Error("ReuseMode should be true")
	}
}

func TestWithConfigInvalidYAML(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid YAML")
		}
	}()
	NewOptions(WithConfig([]byte("mode: [")))
}

func TestOptionsDefaultsIsolated(t *testing.T) {
	a := NewOptions(WithDebugMode(true), WithReuseMode(true))
	b := NewOptions()

	if !a.DebugMode || !a.ReuseMode {
		t.Error("options not applied")
	}
	if b.DebugMode || b.ReuseMode {
		t.Error("defaults leaked between NewOptions calls")
	}
}

func TestWithConfigFileMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on missing file")
		}
	}()
	NewOptions(WithConfigFile("does-not-exist.yml"))
}
