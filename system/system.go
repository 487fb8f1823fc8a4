package system

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/axisim/mem/axiram"
	"github.com/sarchlab/axisim/replay"
)

// A System is a replay master connected to an AXI RAM over two direct
// connections, one per channel pair.
type System struct {
	Engine sim.Engine
	Master *replay.Comp
	RAM    *axiram.Comp
}

// Build creates a system from a config and a transaction list. The
// banked memory behind the RAM starts zero-filled; use Preload to
// initialize contents before running.
func Build(config *Config, transactions []replay.Transaction) (*System, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("system: invalid config: %w", err)
	}

	engine := sim.NewSerialEngine()
	freq := sim.Freq(config.FreqMHz) * sim.MHz

	master := replay.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithBusConfig(config.Bus).
		WithTransactions(transactions).
		WithWarmup(config.WarmupCycles).
		Build("Master")

	ram := axiram.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithBusConfig(config.Bus).
		WithMemoryConfig(config.Memory).
		Build("RAM")

	readConn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		Build("ReadConn")
	readConn.PlugIn(master.ReadPort())
	readConn.PlugIn(ram.ReadPort())

	writeConn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		Build("WriteConn")
	writeConn.PlugIn(master.WritePort())
	writeConn.PlugIn(ram.WritePort())

	master.SetReadSlave(ram.ReadPort().AsRemote())
	master.SetWriteSlave(ram.WritePort().AsRemote())

	return &System{
		Engine: engine,
		Master: master,
		RAM:    ram,
	}, nil
}

// Preload writes a full word into the RAM at the given byte address before
// the run starts.
func (s *System) Preload(addr, value uint64) {
	s.RAM.Preload(addr, value)
}

// Run resets the master and drives the simulation until every transaction
// has completed. A read-verification mismatch panics mid-run.
func (s *System) Run() (replay.Stats, error) {
	s.Master.Reset()

	if err := s.Engine.Run(); err != nil {
		return replay.Stats{}, fmt.Errorf("system: engine run: %w", err)
	}

	if !s.Master.Done() {
		return s.Master.Stats(), fmt.Errorf(
			"system: simulation ended before the master finished")
	}

	return s.Master.Stats(), nil
}
