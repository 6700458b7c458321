package clickplc

import (
	"context"
	"fmt"
)

// planner maps address ranges onto contiguous Modbus spans and moves typed
// values across the transport. It holds no state between calls: every read
// and write is a fresh device round trip.
type planner struct {
	t Transport
}

// span is one contiguous block of Modbus coils or registers.
type span struct {
	addr  uint16
	count uint16
}

// rangeSpan computes the single contiguous span covering r. For grouped
// coil categories the span includes the unowned gap coils between hundreds;
// readRange discards them and writeRange pads them.
func rangeSpan(r AddressRange) span {
	d := descriptors[r.Category]
	start := r.Category.offset(r.Start)
	end := r.Category.offset(r.End)
	if d.coil {
		return span{addr: start, count: end - start + 1}
	}
	return span{addr: start, count: end - start + uint16(d.words)}
}

// readRange reads every value in r in ascending address order.
func (p planner) readRange(ctx context.Context, r AddressRange) ([]Value, error) {
	d := descriptors[r.Category]
	s := rangeSpan(r)
	values := make([]Value, 0, r.Len())
	if d.coil {
		bits, err := p.t.ReadCoils(ctx, s.addr, s.count)
		if err != nil {
			return nil, err
		}
		for i := r.Start; i <= r.End; i = r.Category.next(i) {
			values = append(values, bits[r.Category.offset(i)-s.addr])
		}
		return values, nil
	}
	words, err := p.t.ReadRegisters(ctx, s.addr, s.count)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r.Len(); i++ {
		v, err := decode(r.Category, words[i*d.words:(i+1)*d.words])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// writeRange writes values to r in ascending address order. Encoding and
// count checks run before any transport call, so a bad request never
// partially writes. Gap coils in grouped categories carry no points and are
// written false.
func (p planner) writeRange(ctx context.Context, r AddressRange, values []Value) error {
	if len(values) != r.Len() {
		return fmt.Errorf("clickplc: %d values for %d addresses at %s: %w",
			len(values), r.Len(), r, ErrValueCount)
	}
	d := descriptors[r.Category]
	s := rangeSpan(r)
	if d.coil {
		if len(values) == 1 {
			b, err := toBool(r.Category, values[0])
			if err != nil {
				return err
			}
			return p.t.WriteCoil(ctx, s.addr, b)
		}
		bits := make([]bool, s.count)
		vi := 0
		for i := r.Start; i <= r.End; i = r.Category.next(i) {
			b, err := toBool(r.Category, values[vi])
			if err != nil {
				return err
			}
			bits[r.Category.offset(i)-s.addr] = b
			vi++
		}
		return p.t.WriteCoils(ctx, s.addr, bits)
	}
	words := make([]uint16, 0, s.count)
	for _, v := range values {
		w, err := encode(r.Category, v)
		if err != nil {
			return err
		}
		words = append(words, w...)
	}
	return p.t.WriteRegisters(ctx, s.addr, words)
}
