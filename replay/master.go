package replay

import (
	"log"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/axisim/axi"
)

// DefaultWarmup is the number of cycles the master idles after reset before
// issuing the first transaction.
const DefaultWarmup = 20

type state int

const (
	stateWarmup state = iota
	stateDelay
	stateIssueReadAddr
	stateAwaitReadData
	stateIssueWriteAddr
	stateIssueWriteData
	stateAwaitWriteRsp
	stateDone
)

// Stats counts the channel activity of a master.
type Stats struct {
	// ReadsIssued is the number of read addresses pushed.
	ReadsIssued uint64
	// ReadsVerified is the number of read responses checked against their
	// expected values.
	ReadsVerified uint64
	// WritesIssued is the number of write address/data pairs pushed.
	WritesIssued uint64
	// WritesAcked is the number of write responses received.
	WritesAcked uint64
}

// Comp is a trace-driven AXI master. It drains its transaction list
// strictly in order: a write pushes its address and data beats and then
// blocks for the write response; a read pushes its address, blocks for the
// read data, and verifies it against the expected value. A response
// mismatch is a hard stop. Once every queue is drained the done flag is
// raised and held.
type Comp struct {
	*sim.TickingComponent
	sim.MiddlewareHolder

	readPort  sim.Port
	writePort sim.Port

	readSlave  sim.RemotePort
	writeSlave sim.RemotePort

	busConfig    axi.Config
	transactions []Transaction
	warmup       int

	// Parallel queues in original trace order. delayQ and isWriteQ hold one
	// entry per transaction; raddrQ/rrespQ one per read; waddrQ/wdataQ one
	// per write. isWriteQ selects which group pops next.
	delayQ   []int
	isWriteQ []bool
	raddrQ   []*axi.AddrPayload
	rrespQ   []uint64
	waddrQ   []*axi.AddrPayload
	wdataQ   []*axi.WritePayload

	state state
	wait  int
	done  bool

	stats Stats
}

// Tick updates the component state.
func (c *Comp) Tick() bool {
	return c.MiddlewareHolder.Tick()
}

// ReadPort returns the port driving the read address/data channel pair.
func (c *Comp) ReadPort() sim.Port {
	return c.readPort
}

// WritePort returns the port driving the write address/data/response
// channels.
func (c *Comp) WritePort() sim.Port {
	return c.writePort
}

// SetReadSlave sets the remote port that read requests are sent to.
func (c *Comp) SetReadSlave(slave sim.RemotePort) {
	c.readSlave = slave
}

// SetWriteSlave sets the remote port that write requests are sent to.
func (c *Comp) SetWriteSlave(slave sim.RemotePort) {
	c.writeSlave = slave
}

// Done reports whether every transaction has been issued and, for reads,
// verified. It stays true once raised.
func (c *Comp) Done() bool {
	return c.done
}

// Stats returns the channel activity counters.
func (c *Comp) Stats() Stats {
	return c.stats
}

// Reset aborts the sequence, rebuilds all queues from the original
// transaction list, and returns the master to its warm-up state. Responses
// still sitting in the channel ports belong to the aborted run and are
// discarded.
func (c *Comp) Reset() {
	drainPort(c.readPort)
	drainPort(c.writePort)

	c.buildQueues()

	c.state = stateWarmup
	c.wait = c.warmup
	c.done = false
	c.stats = Stats{}

	c.TickLater()
}

func drainPort(port sim.Port) {
	for port.RetrieveIncoming() != nil {
	}
}

// buildQueues populates the parallel queues from the transaction list.
func (c *Comp) buildQueues() {
	c.delayQ = c.delayQ[:0]
	c.isWriteQ = c.isWriteQ[:0]
	c.raddrQ = c.raddrQ[:0]
	c.rrespQ = c.rrespQ[:0]
	c.waddrQ = c.waddrQ[:0]
	c.wdataQ = c.wdataQ[:0]

	for _, trans := range c.transactions {
		c.delayQ = append(c.delayQ, trans.Delay)
		c.isWriteQ = append(c.isWriteQ, trans.IsWrite)

		if trans.IsWrite {
			addrPld := axi.AddrPayloadBuilder{}.
				WithAddr(trans.Addr).
				WithLen(0).
				Build()
			c.waddrQ = append(c.waddrQ, addrPld)

			dataPld := axi.WritePayloadBuilder{}.
				WithData(trans.Data).
				WithStrb(c.busConfig.FullStrobe()).
				WithLast(true).
				Build()
			c.wdataQ = append(c.wdataQ, dataPld)
		} else {
			addrPld := axi.AddrPayloadBuilder{}.
				WithAddr(trans.Addr).
				WithLen(0).
				Build()
			c.raddrQ = append(c.raddrQ, addrPld)
			c.rrespQ = append(c.rrespQ, trans.Data)
		}
	}
}

type middleware struct {
	*Comp
}

func (m *middleware) Tick() bool {
	switch m.state {
	case stateWarmup, stateDelay:
		return m.tickWait()
	case stateIssueReadAddr:
		return m.issueReadAddr()
	case stateAwaitReadData:
		return m.awaitReadData()
	case stateIssueWriteAddr:
		return m.issueWriteAddr()
	case stateIssueWriteData:
		return m.issueWriteData()
	case stateAwaitWriteRsp:
		return m.awaitWriteRsp()
	case stateDone:
		return false
	default:
		log.Panicf("replay: unknown state %d", m.state)
	}

	return false
}

func (m *middleware) tickWait() bool {
	if m.wait > 0 {
		m.wait--
		return true
	}

	if len(m.delayQ) == 0 {
		m.finish()
		return true
	}

	if m.state == stateWarmup {
		// Leaving warm-up; the first transaction's own delay still applies.
		m.state = stateDelay
		m.wait = m.delayQ[0]

		return true
	}

	if m.isWriteQ[0] {
		m.state = stateIssueWriteAddr
	} else {
		m.state = stateIssueReadAddr
	}

	return true
}

func (m *middleware) issueReadAddr() bool {
	pld := m.raddrQ[0]
	pld.Src = m.readPort.AsRemote()
	pld.Dst = m.mustSlave(m.readSlave, "read")

	if err := m.readPort.Send(pld); err != nil {
		return false
	}

	m.raddrQ = m.raddrQ[1:]
	m.stats.ReadsIssued++
	m.state = stateAwaitReadData

	return true
}

func (m *middleware) awaitReadData() bool {
	msg := m.readPort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	pld, ok := msg.(*axi.ReadPayload)
	if !ok {
		log.Panicf("replay: unsupported message %T on read port", msg)
	}

	expected := m.rrespQ[0]
	if pld.Data != expected {
		log.Panicf(
			"replay: read response mismatch at 0x%X: expected 0x%X, got 0x%X",
			m.transactions[m.completed()].Addr, expected, pld.Data)
	}

	m.rrespQ = m.rrespQ[1:]
	m.stats.ReadsVerified++
	m.popTransaction()

	return true
}

func (m *middleware) issueWriteAddr() bool {
	pld := m.waddrQ[0]
	pld.Src = m.writePort.AsRemote()
	pld.Dst = m.mustSlave(m.writeSlave, "write")

	if err := m.writePort.Send(pld); err != nil {
		return false
	}

	m.waddrQ = m.waddrQ[1:]
	m.state = stateIssueWriteData

	return true
}

func (m *middleware) issueWriteData() bool {
	pld := m.wdataQ[0]
	pld.Src = m.writePort.AsRemote()
	pld.Dst = m.mustSlave(m.writeSlave, "write")

	if err := m.writePort.Send(pld); err != nil {
		return false
	}

	m.wdataQ = m.wdataQ[1:]
	m.stats.WritesIssued++
	m.state = stateAwaitWriteRsp

	return true
}

func (m *middleware) awaitWriteRsp() bool {
	msg := m.writePort.RetrieveIncoming()
	if msg == nil {
		return false
	}

	if _, ok := msg.(*axi.WriteRspPayload); !ok {
		log.Panicf("replay: unsupported message %T on write port", msg)
	}

	m.stats.WritesAcked++
	m.popTransaction()

	return true
}

// popTransaction retires the transaction at the head of the queues and arms
// the delay of the next one.
func (m *middleware) popTransaction() {
	m.delayQ = m.delayQ[1:]
	m.isWriteQ = m.isWriteQ[1:]

	if len(m.delayQ) == 0 {
		m.finish()
		return
	}

	m.state = stateDelay
	m.wait = m.delayQ[0]
}

func (m *middleware) finish() {
	m.state = stateDone
	m.done = true
}

// completed returns the index of the transaction currently at the head of
// the queues.
func (m *middleware) completed() int {
	return len(m.transactions) - len(m.delayQ)
}

func (m *middleware) mustSlave(
	slave sim.RemotePort,
	direction string,
) sim.RemotePort {
	if slave == "" {
		log.Panicf("replay: %s slave port not set", direction)
	}

	return slave
}
