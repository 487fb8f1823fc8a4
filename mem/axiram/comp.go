// Package axiram provides an AXI RAM slave component. It serves read and
// write channel payloads from a banked memory, one access per tick per
// direction, responding in arrival order.
package axiram

import (
	"log"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axisim/axi"
	"github.com/sarchlab/axisim/mem/banked"
)

// Comp is an AXI RAM slave. The read port accepts address payloads and
// answers with read payloads; the write port accepts address/data payload
// pairs and answers with write responses. Addresses beyond the memory
// capacity are answered with SLVERR and never touch storage.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	readPort  sim.Port
	writePort sim.Port

	busConfig axi.Config
	memory    *banked.Memory

	// Write addresses and data beats arrive on independent channels and
	// are paired FIFO.
	pendingWAddr []*axi.AddrPayload
	pendingWData []*axi.WritePayload
}

// Tick updates the component state.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// Memory returns the banked memory backing this RAM.
func (c *Comp) Memory() *banked.Memory {
	return c.memory
}

// ReadPort returns the port serving the read address/data channel pair.
func (c *Comp) ReadPort() sim.Port {
	return c.readPort
}

// WritePort returns the port serving the write address/data/response
// channels.
func (c *Comp) WritePort() sim.Port {
	return c.writePort
}

// Preload writes a full word at the given byte address, bypassing the
// channel interfaces. It is meant for test and harness initialization.
func (c *Comp) Preload(addr, value uint64) {
	row, bank, ok := c.decode(addr)
	if !ok {
		log.Panicf("axiram: preload address 0x%X beyond capacity", addr)
	}

	c.memory.WriteWord(row, bank, value)
}

// decode splits a byte address into a bank row and a bank select index,
// interleaving consecutive words across banks.
func (c *Comp) decode(addr uint64) (row, bank int, ok bool) {
	wordIndex := addr / uint64(c.busConfig.BytesPerBeat())

	memConfig := c.memory.Config()
	if wordIndex >= uint64(memConfig.NumEntries) {
		return 0, 0, false
	}

	bank = int(wordIndex % uint64(memConfig.NumBanks))
	row = int(wordIndex / uint64(memConfig.NumBanks))

	return row, bank, true
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() (madeProgress bool) {
	madeProgress = m.serveRead() || madeProgress
	madeProgress = m.collectWrite() || madeProgress
	madeProgress = m.serveWrite() || madeProgress

	return madeProgress
}

func (m *middleware) serveRead() bool {
	msg := m.readPort.PeekIncoming()
	if msg == nil {
		return false
	}

	addrPld, ok := msg.(*axi.AddrPayload)
	if !ok {
		log.Panicf("axiram: unsupported message %T on read port", msg)
	}

	if !m.readPort.CanSend() {
		return false
	}

	resp := axi.RespOkay

	var data uint64

	row, bank, inRange := m.decode(addrPld.Addr)
	if inRange {
		data = m.memory.Read(row, bank)
	} else {
		resp = axi.RespSlvErr
	}

	rsp := axi.ReadPayloadBuilder{}.
		WithSrc(m.readPort.AsRemote()).
		WithDst(addrPld.Src).
		WithData(data).
		WithResp(resp).
		WithLast(true).
		WithRspTo(addrPld.ID).
		Build()

	if err := m.readPort.Send(rsp); err != nil {
		return false
	}

	m.readPort.RetrieveIncoming()

	return true
}

func (m *middleware) collectWrite() bool {
	msg := m.writePort.PeekIncoming()
	if msg == nil {
		return false
	}

	switch pld := msg.(type) {
	case *axi.AddrPayload:
		m.pendingWAddr = append(m.pendingWAddr, pld)
	case *axi.WritePayload:
		m.pendingWData = append(m.pendingWData, pld)
	default:
		log.Panicf("axiram: unsupported message %T on write port", msg)
	}

	m.writePort.RetrieveIncoming()

	return true
}

func (m *middleware) serveWrite() bool {
	if len(m.pendingWAddr) == 0 || len(m.pendingWData) == 0 {
		return false
	}

	if !m.writePort.CanSend() {
		return false
	}

	addrPld := m.pendingWAddr[0]
	dataPld := m.pendingWData[0]

	resp := axi.RespOkay

	row, bank, inRange := m.decode(addrPld.Addr)
	if inRange {
		// Strobe bits map one-to-one onto memory slices; the builder
		// enforces the matching shapes.
		m.memory.Write(row, bank, dataPld.Data, dataPld.Strb, true)
	} else {
		resp = axi.RespSlvErr
	}

	rsp := axi.WriteRspPayloadBuilder{}.
		WithSrc(m.writePort.AsRemote()).
		WithDst(addrPld.Src).
		WithResp(resp).
		WithRspTo(addrPld.ID).
		Build()

	if err := m.writePort.Send(rsp); err != nil {
		return false
	}

	m.pendingWAddr = m.pendingWAddr[1:]
	m.pendingWData = m.pendingWData[1:]

	return true
}
