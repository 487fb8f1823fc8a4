// Package axi provides the AXI bus configuration and the channel payload
// messages exchanged between bus masters and slaves.
package axi

import "fmt"

// Config fixes the shape of an AXI bus instance. Widths are in bits and are
// immutable once a component is built with the config.
type Config struct {
	// AddrWidth is the width of the address channels.
	AddrWidth int `json:"addr_width"`

	// DataWidth is the width of the data channels. Must be a multiple of 8
	// so that the write strobe has one bit per byte.
	DataWidth int `json:"data_width"`

	// IDWidth is the width of the transaction ID fields. Zero is allowed
	// for buses that do not use IDs.
	IDWidth int `json:"id_width"`
}

// DefaultConfig returns a 64-bit-address, 64-bit-data bus configuration.
func DefaultConfig() Config {
	return Config{
		AddrWidth: 64,
		DataWidth: 64,
		IDWidth:   4,
	}
}

// Validate checks that the configured widths are representable.
func (c Config) Validate() error {
	if c.AddrWidth <= 0 || c.AddrWidth > 64 {
		return fmt.Errorf("axi: addr width must be in (0, 64], got %d",
			c.AddrWidth)
	}

	if c.DataWidth <= 0 || c.DataWidth > 64 {
		return fmt.Errorf("axi: data width must be in (0, 64], got %d",
			c.DataWidth)
	}

	if c.DataWidth%8 != 0 {
		return fmt.Errorf("axi: data width must be a multiple of 8, got %d",
			c.DataWidth)
	}

	if c.IDWidth < 0 || c.IDWidth > 32 {
		return fmt.Errorf("axi: id width must be in [0, 32], got %d",
			c.IDWidth)
	}

	return nil
}

// BytesPerBeat returns the number of bytes carried by one data beat.
func (c Config) BytesPerBeat() int {
	return c.DataWidth / 8
}

// AddrMask returns the mask selecting the valid address bits.
func (c Config) AddrMask() uint64 {
	return widthMask(c.AddrWidth)
}

// DataMask returns the mask selecting the valid data bits.
func (c Config) DataMask() uint64 {
	return widthMask(c.DataWidth)
}

// FullStrobe returns the write strobe with every byte lane valid.
func (c Config) FullStrobe() uint64 {
	return widthMask(c.BytesPerBeat())
}

func widthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(bits)) - 1
}
