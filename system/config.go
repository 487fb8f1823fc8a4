// Package system wires a replay master to an AXI RAM slave and runs the
// simulation to completion. It is the harness used by the CLI and the
// end-to-end tests.
package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/axisim/axi"
	"github.com/sarchlab/axisim/mem/banked"
)

// Config describes a complete replay system.
type Config struct {
	// Bus is the AXI bus configuration shared by the master and the RAM.
	Bus axi.Config `json:"bus"`

	// Memory is the shape of the banked memory behind the RAM slave.
	Memory banked.Config `json:"memory"`

	// WarmupCycles is the idle time before the first transaction.
	WarmupCycles int `json:"warmup_cycles"`

	// FreqMHz is the clock frequency of every component in MHz.
	FreqMHz int `json:"freq_mhz"`
}

// DefaultConfig returns a 64-bit bus over a 4-bank, 1024-word memory.
func DefaultConfig() *Config {
	return &Config{
		Bus: axi.DefaultConfig(),
		Memory: banked.Config{
			WordWidth:      64,
			NumEntries:     1024,
			NumBanks:       4,
			NumByteEnables: 8,
		},
		WarmupCycles: 20,
		FreqMHz:      1000,
	}
}

// LoadConfig loads a Config from a JSON file. Fields omitted from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize system config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write system config file: %w", err)
	}

	return nil
}

// Validate checks the bus configuration and the memory shape, including
// that they agree with each other.
func (c *Config) Validate() error {
	if err := c.Bus.Validate(); err != nil {
		return err
	}

	if c.Memory.WordWidth != c.Bus.DataWidth {
		return fmt.Errorf(
			"memory word width %d must equal bus data width %d",
			c.Memory.WordWidth, c.Bus.DataWidth)
	}

	if c.Memory.NumByteEnables != c.Bus.BytesPerBeat() {
		return fmt.Errorf(
			"memory byte enables %d must equal bus bytes per beat %d",
			c.Memory.NumByteEnables, c.Bus.BytesPerBeat())
	}

	if c.WarmupCycles < 0 {
		return fmt.Errorf("warmup_cycles must be non-negative")
	}

	if c.FreqMHz <= 0 {
		return fmt.Errorf("freq_mhz must be > 0")
	}

	return nil
}
