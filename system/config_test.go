package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sarchlab/axisim/system"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := system.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	content := `{"memory": {"num_entries": 2048, "num_banks": 8,
		"word_width": 64, "num_byte_enables": 8}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := system.LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if config.Memory.NumEntries != 2048 {
		t.Errorf("num entries: got %d, want 2048", config.Memory.NumEntries)
	}

	if config.Memory.NumBanks != 8 {
		t.Errorf("num banks: got %d, want 8", config.Memory.NumBanks)
	}

	// Omitted sections keep their defaults.
	if config.Bus.DataWidth != 64 {
		t.Errorf("data width: got %d, want default 64", config.Bus.DataWidth)
	}

	if config.WarmupCycles != 20 {
		t.Errorf("warmup: got %d, want default 20", config.WarmupCycles)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := system.LoadConfig("/nonexistent/config.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := system.LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := system.DefaultConfig()
	config.WarmupCycles = 7

	if err := config.SaveConfig(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := system.LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.WarmupCycles != 7 {
		t.Errorf("warmup: got %d, want 7", loaded.WarmupCycles)
	}
}

func TestValidateRejectsMismatchedShapes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*system.Config)
	}{
		{"word width != data width", func(c *system.Config) {
			c.Memory.WordWidth = 32
		}},
		{"byte enables != bytes per beat", func(c *system.Config) {
			c.Memory.NumByteEnables = 4
		}},
		{"negative warmup", func(c *system.Config) {
			c.WarmupCycles = -1
		}},
		{"zero frequency", func(c *system.Config) {
			c.FreqMHz = 0
		}},
		{"invalid bus", func(c *system.Config) {
			c.Bus.DataWidth = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := system.DefaultConfig()
			tt.mutate(config)

			if err := config.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
