package axi_test

import (
	"testing"

	"github.com/sarchlab/axisim/axi"
)

func TestValidateAcceptsDefault(t *testing.T) {
	if err := axi.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadWidths(t *testing.T) {
	tests := []struct {
		name   string
		config axi.Config
	}{
		{"zero addr width", axi.Config{AddrWidth: 0, DataWidth: 64}},
		{"addr width over 64", axi.Config{AddrWidth: 65, DataWidth: 64}},
		{"zero data width", axi.Config{AddrWidth: 32, DataWidth: 0}},
		{"data width over 64", axi.Config{AddrWidth: 32, DataWidth: 72}},
		{"data width not byte multiple", axi.Config{AddrWidth: 32, DataWidth: 12}},
		{"negative id width", axi.Config{AddrWidth: 32, DataWidth: 32, IDWidth: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err == nil {
				t.Errorf("expected validation error for %+v", tt.config)
			}
		})
	}
}

func TestMasks(t *testing.T) {
	config := axi.Config{AddrWidth: 16, DataWidth: 32, IDWidth: 4}

	if got := config.AddrMask(); got != 0xFFFF {
		t.Errorf("addr mask: got 0x%X, want 0xFFFF", got)
	}

	if got := config.DataMask(); got != 0xFFFFFFFF {
		t.Errorf("data mask: got 0x%X, want 0xFFFFFFFF", got)
	}

	if got := config.FullStrobe(); got != 0xF {
		t.Errorf("full strobe: got 0x%X, want 0xF", got)
	}

	if got := config.BytesPerBeat(); got != 4 {
		t.Errorf("bytes per beat: got %d, want 4", got)
	}
}

func TestFullWidthMasks(t *testing.T) {
	config := axi.Config{AddrWidth: 64, DataWidth: 64}

	if got := config.AddrMask(); got != ^uint64(0) {
		t.Errorf("64-bit addr mask: got 0x%X", got)
	}

	if got := config.DataMask(); got != ^uint64(0) {
		t.Errorf("64-bit data mask: got 0x%X", got)
	}
}
