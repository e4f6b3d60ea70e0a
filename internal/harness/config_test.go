package harness_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/go-spsc-ring/internal/harness"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*harness.Config)
		ok     bool
	}{
		{"default", func(*harness.Config) {}, true},
		{"zero iterations", func(c *harness.Config) { c.Iterations = 0 }, false},
		{"negative capacity", func(c *harness.Config) { c.Capacity = -1 }, false},
		{"batch zero", func(c *harness.Config) { c.Variant = harness.Batched; c.Batch = 0 }, false},
		{"batch above capacity", func(c *harness.Config) { c.Variant = harness.Batched; c.Batch = c.Capacity + 1 }, false},
		{"batch ignored for direct", func(c *harness.Config) { c.Batch = 0 }, true},
		{"unknown variant", func(c *harness.Config) { c.Variant = harness.Variant(42) }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := harness.DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("expected valid config, got %v", err)
			}
			if !tc.ok && !errors.Is(err, harness.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := harness.DefaultConfig()
	if cfg.Iterations != 10_000_000 || cfg.Capacity != 1024 {
		t.Errorf("expected 10M iterations through 1024 slots, got %d and %d", cfg.Iterations, cfg.Capacity)
	}
	if cfg.ProducerCPU != -1 || cfg.ConsumerCPU != -1 {
		t.Error("expected threads unpinned by default")
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []harness.Variant{harness.Direct, harness.Batched, harness.Channel, harness.Locked} {
		got, err := harness.ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := harness.ParseVariant("unsync"); !errors.Is(err, harness.ErrInvalidConfig) {
		t.Errorf("ParseVariant(unsync): expected ErrInvalidConfig, got %v", err)
	}
}
