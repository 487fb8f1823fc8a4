package axi

import "github.com/sarchlab/akita/v4/sim"

// Resp is the status carried by read data and write response beats.
type Resp uint8

// AXI response codes.
const (
	RespOkay   Resp = 0
	RespSlvErr Resp = 2
)

func (r Resp) String() string {
	switch r {
	case RespOkay:
		return "OKAY"
	case RespSlvErr:
		return "SLVERR"
	default:
		return "UNKNOWN"
	}
}

// An AddrPayload is one beat on a read-address or write-address channel.
type AddrPayload struct {
	sim.MsgMeta

	Addr uint64
	Len  uint8
	TID  uint64
}

// Meta returns the message meta data.
func (p *AddrPayload) Meta() *sim.MsgMeta {
	return &p.MsgMeta
}

// Clone returns a copy of the payload with a fresh message ID.
func (p *AddrPayload) Clone() sim.Msg {
	c := *p
	c.ID = sim.GetIDGenerator().Generate()

	return &c
}

// AddrPayloadBuilder can build address channel payloads.
type AddrPayloadBuilder struct {
	src, dst sim.RemotePort
	addr     uint64
	len      uint8
	tid      uint64
}

// WithSrc sets the source port of the payload to build.
func (b AddrPayloadBuilder) WithSrc(src sim.RemotePort) AddrPayloadBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the payload to build.
func (b AddrPayloadBuilder) WithDst(dst sim.RemotePort) AddrPayloadBuilder {
	b.dst = dst
	return b
}

// WithAddr sets the address of the payload to build.
func (b AddrPayloadBuilder) WithAddr(addr uint64) AddrPayloadBuilder {
	b.addr = addr
	return b
}

// WithLen sets the burst length (beats minus one) of the payload to build.
func (b AddrPayloadBuilder) WithLen(l uint8) AddrPayloadBuilder {
	b.len = l
	return b
}

// WithTID sets the transaction ID of the payload to build.
func (b AddrPayloadBuilder) WithTID(tid uint64) AddrPayloadBuilder {
	b.tid = tid
	return b
}

// Build creates a new AddrPayload.
func (b AddrPayloadBuilder) Build() *AddrPayload {
	p := &AddrPayload{}
	p.ID = sim.GetIDGenerator().Generate()
	p.Src = b.src
	p.Dst = b.dst
	p.TrafficBytes = 8
	p.Addr = b.addr
	p.Len = b.len
	p.TID = b.tid

	return p
}

// A WritePayload is one beat on the write-data channel.
type WritePayload struct {
	sim.MsgMeta

	Data uint64
	Strb uint64
	Last bool
}

// Meta returns the message meta data.
func (p *WritePayload) Meta() *sim.MsgMeta {
	return &p.MsgMeta
}

// Clone returns a copy of the payload with a fresh message ID.
func (p *WritePayload) Clone() sim.Msg {
	c := *p
	c.ID = sim.GetIDGenerator().Generate()

	return &c
}

// WritePayloadBuilder can build write-data channel payloads.
type WritePayloadBuilder struct {
	src, dst sim.RemotePort
	data     uint64
	strb     uint64
	last     bool
}

// WithSrc sets the source port of the payload to build.
func (b WritePayloadBuilder) WithSrc(src sim.RemotePort) WritePayloadBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the payload to build.
func (b WritePayloadBuilder) WithDst(dst sim.RemotePort) WritePayloadBuilder {
	b.dst = dst
	return b
}

// WithData sets the data beat of the payload to build.
func (b WritePayloadBuilder) WithData(data uint64) WritePayloadBuilder {
	b.data = data
	return b
}

// WithStrb sets the byte-valid strobe of the payload to build.
func (b WritePayloadBuilder) WithStrb(strb uint64) WritePayloadBuilder {
	b.strb = strb
	return b
}

// WithLast marks the payload to build as the final beat of its burst.
func (b WritePayloadBuilder) WithLast(last bool) WritePayloadBuilder {
	b.last = last
	return b
}

// Build creates a new WritePayload.
func (b WritePayloadBuilder) Build() *WritePayload {
	p := &WritePayload{}
	p.ID = sim.GetIDGenerator().Generate()
	p.Src = b.src
	p.Dst = b.dst
	p.TrafficBytes = 8
	p.Data = b.data
	p.Strb = b.strb
	p.Last = b.last

	return p
}

// A ReadPayload is one beat on the read-data channel.
type ReadPayload struct {
	sim.MsgMeta

	Data      uint64
	Resp      Resp
	Last      bool
	RespondTo string
}

// Meta returns the message meta data.
func (p *ReadPayload) Meta() *sim.MsgMeta {
	return &p.MsgMeta
}

// Clone returns a copy of the payload with a fresh message ID.
func (p *ReadPayload) Clone() sim.Msg {
	c := *p
	c.ID = sim.GetIDGenerator().Generate()

	return &c
}

// GetRspTo returns the ID of the address payload being answered.
func (p *ReadPayload) GetRspTo() string {
	return p.RespondTo
}

// ReadPayloadBuilder can build read-data channel payloads.
type ReadPayloadBuilder struct {
	src, dst sim.RemotePort
	data     uint64
	resp     Resp
	last     bool
	rspTo    string
}

// WithSrc sets the source port of the payload to build.
func (b ReadPayloadBuilder) WithSrc(src sim.RemotePort) ReadPayloadBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the payload to build.
func (b ReadPayloadBuilder) WithDst(dst sim.RemotePort) ReadPayloadBuilder {
	b.dst = dst
	return b
}

// WithData sets the data beat of the payload to build.
func (b ReadPayloadBuilder) WithData(data uint64) ReadPayloadBuilder {
	b.data = data
	return b
}

// WithResp sets the response status of the payload to build.
func (b ReadPayloadBuilder) WithResp(resp Resp) ReadPayloadBuilder {
	b.resp = resp
	return b
}

// WithLast marks the payload to build as the final beat of its burst.
func (b ReadPayloadBuilder) WithLast(last bool) ReadPayloadBuilder {
	b.last = last
	return b
}

// WithRspTo sets the ID of the address payload being answered.
func (b ReadPayloadBuilder) WithRspTo(id string) ReadPayloadBuilder {
	b.rspTo = id
	return b
}

// Build creates a new ReadPayload.
func (b ReadPayloadBuilder) Build() *ReadPayload {
	p := &ReadPayload{}
	p.ID = sim.GetIDGenerator().Generate()
	p.Src = b.src
	p.Dst = b.dst
	p.TrafficBytes = 8
	p.Data = b.data
	p.Resp = b.resp
	p.Last = b.last
	p.RespondTo = b.rspTo

	return p
}

// A WriteRspPayload is one beat on the write-response channel.
type WriteRspPayload struct {
	sim.MsgMeta

	Resp      Resp
	RespondTo string
}

// Meta returns the message meta data.
func (p *WriteRspPayload) Meta() *sim.MsgMeta {
	return &p.MsgMeta
}

// Clone returns a copy of the payload with a fresh message ID.
func (p *WriteRspPayload) Clone() sim.Msg {
	c := *p
	c.ID = sim.GetIDGenerator().Generate()

	return &c
}

// GetRspTo returns the ID of the address payload being answered.
func (p *WriteRspPayload) GetRspTo() string {
	return p.RespondTo
}

// WriteRspPayloadBuilder can build write-response channel payloads.
type WriteRspPayloadBuilder struct {
	src, dst sim.RemotePort
	resp     Resp
	rspTo    string
}

// WithSrc sets the source port of the payload to build.
func (b WriteRspPayloadBuilder) WithSrc(
	src sim.RemotePort,
) WriteRspPayloadBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the payload to build.
func (b WriteRspPayloadBuilder) WithDst(
	dst sim.RemotePort,
) WriteRspPayloadBuilder {
	b.dst = dst
	return b
}

// WithResp sets the response status of the payload to build.
func (b WriteRspPayloadBuilder) WithResp(resp Resp) WriteRspPayloadBuilder {
	b.resp = resp
	return b
}

// WithRspTo sets the ID of the address payload being answered.
func (b WriteRspPayloadBuilder) WithRspTo(id string) WriteRspPayloadBuilder {
	b.rspTo = id
	return b
}

// Build creates a new WriteRspPayload.
func (b WriteRspPayloadBuilder) Build() *WriteRspPayload {
	p := &WriteRspPayload{}
	p.ID = sim.GetIDGenerator().Generate()
	p.Src = b.src
	p.Dst = b.dst
	p.TrafficBytes = 4
	p.Resp = b.resp
	p.RespondTo = b.rspTo

	return p
}
