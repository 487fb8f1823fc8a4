// Package banked provides a fixed-shape, multi-bank word store with
// slice-granular write masking. It models an SRAM macro split into banks,
// where each word row is divided into independently writable slices gated by
// a byte-enable mask.
package banked

import "log"

// Config fixes the shape of a Memory. The shape is immutable once the
// memory is constructed.
type Config struct {
	// WordWidth is the width of one stored word in bits. At most 64.
	WordWidth int `json:"word_width"`

	// NumEntries is the total number of words across all banks.
	NumEntries int `json:"num_entries"`

	// NumBanks is the number of independently addressed banks. Must divide
	// NumEntries evenly.
	NumBanks int `json:"num_banks"`

	// NumByteEnables is the number of write-maskable slices per word. Must
	// divide WordWidth evenly.
	NumByteEnables int `json:"num_byte_enables"`
}

// A Memory is a banked word store. Rows are addressed by a local index
// within a bank plus a bank-select index; there is no cross-bank
// addressing. All state is allocated at construction and mutated in place.
type Memory struct {
	config         Config
	entriesPerBank int
	sliceWidth     int
	sliceMask      uint64
	fullMask       uint64

	// banks[b][idx*NumByteEnables+i] holds slice i of row idx, with slice 0
	// being the least significant.
	banks [][]uint64
}

// New creates a zero-filled Memory. The shape is a programming contract,
// not runtime data, so an invalid config panics.
func New(config Config) *Memory {
	if config.WordWidth <= 0 || config.WordWidth > 64 {
		log.Panicf("banked: word width must be in (0, 64], got %d",
			config.WordWidth)
	}

	if config.NumEntries <= 0 {
		log.Panicf("banked: num entries must be > 0, got %d",
			config.NumEntries)
	}

	if config.NumBanks <= 0 || config.NumEntries%config.NumBanks != 0 {
		log.Panicf("banked: num banks %d must be > 0 and divide %d entries",
			config.NumBanks, config.NumEntries)
	}

	if config.NumByteEnables <= 0 ||
		config.WordWidth%config.NumByteEnables != 0 {
		log.Panicf(
			"banked: num byte enables %d must be > 0 and divide width %d",
			config.NumByteEnables, config.WordWidth)
	}

	m := &Memory{
		config:         config,
		entriesPerBank: config.NumEntries / config.NumBanks,
		sliceWidth:     config.WordWidth / config.NumByteEnables,
	}

	m.sliceMask = widthMask(m.sliceWidth)
	m.fullMask = widthMask(config.NumByteEnables)

	m.banks = make([][]uint64, config.NumBanks)
	for b := range m.banks {
		m.banks[b] = make([]uint64, m.entriesPerBank*config.NumByteEnables)
	}

	return m
}

// Config returns the shape the memory was built with.
func (m *Memory) Config() Config {
	return m.config
}

// EntriesPerBank returns the number of word rows in each bank.
func (m *Memory) EntriesPerBank() int {
	return m.entriesPerBank
}

// SliceWidth returns the width of one write-maskable slice in bits.
func (m *Memory) SliceWidth() int {
	return m.sliceWidth
}

// FullMask returns the write mask with every slice enabled.
func (m *Memory) FullMask() uint64 {
	return m.fullMask
}

// Read reconstructs the word at the given row of the given bank by
// concatenating its slices, slice 0 least significant. It has no side
// effects. Out-of-range indices panic.
func (m *Memory) Read(localIndex, bankSelect int) uint64 {
	m.checkIndex(localIndex, bankSelect)

	var word uint64

	base := localIndex * m.config.NumByteEnables
	for i := 0; i < m.config.NumByteEnables; i++ {
		word |= m.banks[bankSelect][base+i] << uint(i*m.sliceWidth)
	}

	return word
}

// Write splits value into slices and overwrites exactly the slices whose
// mask bit is set. Slices with a clear mask bit keep their previous
// content; there is no read-modify-write at word granularity. If enable is
// false nothing is modified. Out-of-range indices panic.
func (m *Memory) Write(
	localIndex, bankSelect int,
	value uint64,
	mask uint64,
	enable bool,
) {
	m.checkIndex(localIndex, bankSelect)

	if !enable {
		return
	}

	base := localIndex * m.config.NumByteEnables
	for i := 0; i < m.config.NumByteEnables; i++ {
		if mask&(uint64(1)<<uint(i)) == 0 {
			continue
		}

		slice := (value >> uint(i*m.sliceWidth)) & m.sliceMask
		m.banks[bankSelect][base+i] = slice
	}
}

// WriteWord writes a full word with every slice enabled.
func (m *Memory) WriteWord(localIndex, bankSelect int, value uint64) {
	m.Write(localIndex, bankSelect, value, m.fullMask, true)
}

// Clear zeroes every slice in every bank, bypassing the write mask. The
// memory is not reallocated.
func (m *Memory) Clear() {
	for b := range m.banks {
		for i := range m.banks[b] {
			m.banks[b][i] = 0
		}
	}
}

func (m *Memory) checkIndex(localIndex, bankSelect int) {
	if bankSelect < 0 || bankSelect >= m.config.NumBanks {
		log.Panicf("banked: bank select %d out of range [0, %d)",
			bankSelect, m.config.NumBanks)
	}

	if localIndex < 0 || localIndex >= m.entriesPerBank {
		log.Panicf("banked: local index %d out of range [0, %d)",
			localIndex, m.entriesPerBank)
	}
}

func widthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(bits)) - 1
}
