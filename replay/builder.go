package replay

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axisim/axi"
)

// Builder constructs replay master components.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq

	busConfig      axi.Config
	transactions   []Transaction
	warmup         int
	portBufferSize int
}

// MakeBuilder creates a builder with reasonable defaults.
func MakeBuilder() Builder {
	return Builder{
		freq:           1 * sim.GHz,
		busConfig:      axi.DefaultConfig(),
		warmup:         DefaultWarmup,
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

// WithTransactions sets the transaction list to replay.
func (b Builder) WithTransactions(transactions []Transaction) Builder {
	b.transactions = transactions
	return b
}

// WithWarmup overrides the warm-up delay in cycles.
func (b Builder) WithWarmup(cycles int) Builder {
	b.warmup = cycles
	return b
}

// WithPortBufferSize sets the incoming and outgoing buffer capacity of both
// ports.
func (b Builder) WithPortBufferSize(size int) Builder {
	b.portBufferSize = size
	return b
}

// Build creates a replay master. The master starts in its warm-up state;
// call Reset after connecting its ports to arm the first tick.
func (b Builder) Build(name string) *Comp {
	if b.engine == nil {
		panic("replay.Builder: engine is nil; call WithEngine")
	}

	if err := b.busConfig.Validate(); err != nil {
		panic(err)
	}

	if b.warmup < 0 {
		panic("replay.Builder: warmup must be non-negative")
	}

	if b.portBufferSize <= 0 {
		panic("replay.Builder: port buffer size must be > 0")
	}

	c := &Comp{
		busConfig:    b.busConfig,
		transactions: b.transactions,
		warmup:       b.warmup,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.readPort = sim.NewPort(
		c, b.portBufferSize, b.portBufferSize, name+".ReadPort")
	c.AddPort("Read", c.readPort)

	c.writePort = sim.NewPort(
		c, b.portBufferSize, b.portBufferSize, name+".WritePort")
	c.AddPort("Write", c.writePort)

	c.AddMiddleware(&middleware{Comp: c})

	c.buildQueues()
	c.state = stateWarmup
	c.wait = c.warmup

	return c
}
