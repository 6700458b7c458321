package clickplc

import (
	"context"
	"encoding/binary"
	"log/slog"

	"github.com/grid-x/modbus"
)

// Transport is the narrow surface the driver needs from a Modbus
// connection. A ClientTransport adapts a grid-x modbus client to it; tests
// and offline use substitute a Simulator.
//
// The transport owns serialization: Modbus TCP is a single-request channel,
// so concurrent callers must be queued or rejected here, not in the driver.
type Transport interface {
	ReadCoils(ctx context.Context, address, count uint16) ([]bool, error)
	ReadRegisters(ctx context.Context, address, count uint16) ([]uint16, error)
	WriteCoil(ctx context.Context, address uint16, value bool) error
	WriteCoils(ctx context.Context, address uint16, values []bool) error
	WriteRegisters(ctx context.Context, address uint16, values []uint16) error
}

// Protocol maximums per Modbus transaction. Spans beyond these are split
// into consecutive transactions, so callers never see PDU size limits.
const (
	maxReadCoils  = 2000
	maxWriteCoils = 1968
	maxReadRegs   = 125
	maxWriteRegs  = 123
)

// ClientTransport implements Transport on top of a grid-x modbus client.
// It chunks oversized spans and converts between the wire's packed bytes
// and the driver's bools and words.
type ClientTransport struct {
	Client modbus.Client
	// Logger, when set, traces each transaction at debug level.
	Logger *slog.Logger
}

// NewTransport wraps a grid-x modbus client.
func NewTransport(c modbus.Client) *ClientTransport {
	return &ClientTransport{Client: c}
}

func (t *ClientTransport) trace(msg string, address, count uint16) {
	if t.Logger != nil {
		t.Logger.Debug(msg, "address", address, "count", count)
	}
}

func (t *ClientTransport) ReadCoils(ctx context.Context, address, count uint16) ([]bool, error) {
	bits := make([]bool, 0, count)
	for count > 0 {
		n := min(count, maxReadCoils)
		t.trace("read coils", address, n)
		raw, err := t.Client.ReadCoils(ctx, address, n)
		if err != nil {
			return nil, err
		}
		bits = append(bits, unpackBits(raw, int(n))...)
		address += n
		count -= n
	}
	return bits, nil
}

func (t *ClientTransport) ReadRegisters(ctx context.Context, address, count uint16) ([]uint16, error) {
	words := make([]uint16, 0, count)
	for count > 0 {
		n := min(count, maxReadRegs)
		t.trace("read registers", address, n)
		raw, err := t.Client.ReadHoldingRegisters(ctx, address, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(n); i++ {
			words = append(words, binary.BigEndian.Uint16(raw[2*i:]))
		}
		address += n
		count -= n
	}
	return words, nil
}

func (t *ClientTransport) WriteCoil(ctx context.Context, address uint16, value bool) error {
	// The protocol encodes coil state as 0xFF00/0x0000.
	var v uint16
	if value {
		v = 0xFF00
	}
	t.trace("write coil", address, 1)
	_, err := t.Client.WriteSingleCoil(ctx, address, v)
	return err
}

func (t *ClientTransport) WriteCoils(ctx context.Context, address uint16, values []bool) error {
	for len(values) > 0 {
		n := min(len(values), maxWriteCoils)
		t.trace("write coils", address, uint16(n))
		if _, err := t.Client.WriteMultipleCoils(ctx, address, uint16(n), packBits(values[:n])); err != nil {
			return err
		}
		address += uint16(n)
		values = values[n:]
	}
	return nil
}

func (t *ClientTransport) WriteRegisters(ctx context.Context, address uint16, values []uint16) error {
	for len(values) > 0 {
		n := min(len(values), maxWriteRegs)
		raw := make([]byte, 2*n)
		for i, w := range values[:n] {
			binary.BigEndian.PutUint16(raw[2*i:], w)
		}
		t.trace("write registers", address, uint16(n))
		if _, err := t.Client.WriteMultipleRegisters(ctx, address, uint16(n), raw); err != nil {
			return err
		}
		address += uint16(n)
		values = values[n:]
	}
	return nil
}

// unpackBits expands a coil response, least significant bit first. The
// response is byte-padded, so n trims the trailing fill bits.
func unpackBits(raw []byte, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = raw[i/8]&(1<<(i%8)) != 0
	}
	return bits
}

// packBits is the inverse of unpackBits.
func packBits(bits []bool) []byte {
	raw := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			raw[i/8] |= 1 << (i % 8)
		}
	}
	return raw
}
