package axiram

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axisim/axi"
	"github.com/sarchlab/axisim/mem/banked"
)

// Builder constructs AXI RAM components.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq

	busConfig      axi.Config
	memory         *banked.Memory
	memoryConfig   banked.Config
	portBufferSize int
}

// MakeBuilder creates a builder with reasonable defaults.
func MakeBuilder() Builder {
	return Builder{
		freq:      1 * sim.GHz,
		busConfig: axi.DefaultConfig(),
		memoryConfig: banked.Config{
			WordWidth:      64,
			NumEntries:     1024,
			NumBanks:       4,
			NumByteEnables: 8,
		},
		portBufferSize: 4,
	}
}

// WithEngine sets the simulation engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the component frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithBusConfig sets the AXI bus configuration.
func (b Builder) WithBusConfig(config axi.Config) Builder {
	b.busConfig = config
	return b
}

// WithMemory reuses an existing banked memory.
func (b Builder) WithMemory(memory *banked.Memory) Builder {
	b.memory = memory
	return b
}

// WithMemoryConfig sets the shape of the banked memory to create.
func (b Builder) WithMemoryConfig(config banked.Config) Builder {
	b.memoryConfig = config
	return b
}

// WithPortBufferSize sets the incoming and outgoing buffer capacity of both
// ports.
func (b Builder) WithPortBufferSize(size int) Builder {
	b.portBufferSize = size
	return b
}

// Build creates an AXI RAM component.
func (b Builder) Build(name string) *Comp {
	if b.engine == nil {
		panic("axiram.Builder: engine is nil; call WithEngine")
	}

	if err := b.busConfig.Validate(); err != nil {
		panic(err)
	}

	if b.portBufferSize <= 0 {
		panic("axiram.Builder: port buffer size must be > 0")
	}

	memory := b.memory
	if memory == nil {
		memory = banked.New(b.memoryConfig)
	}

	memConfig := memory.Config()
	if memConfig.WordWidth != b.busConfig.DataWidth {
		panic("axiram.Builder: memory word width must equal bus data width")
	}

	if memConfig.NumByteEnables != b.busConfig.BytesPerBeat() {
		panic("axiram.Builder: memory byte enables must equal bus " +
			"bytes per beat")
	}

	c := &Comp{
		busConfig: b.busConfig,
		memory:    memory,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.readPort = sim.NewPort(
		c, b.portBufferSize, b.portBufferSize, name+".ReadPort")
	c.AddPort("Read", c.readPort)

	c.writePort = sim.NewPort(
		c, b.portBufferSize, b.portBufferSize, name+".WritePort")
	c.AddPort("Write", c.writePort)

	c.AddMiddleware(&middleware{Comp: c})

	return c
}
