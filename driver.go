package clickplc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grid-x/modbus"
)

// Driver is the public face of the ClickPLC client. It dispatches get/set
// keys to nicknames or parsed address ranges, plans the Modbus spans and
// converts values. One driver holds one logical session: requests are
// serialized by the underlying transport, and the driver itself keeps no
// mutable state between calls.
type Driver struct {
	transport Transport
	tags      *TagIndex
	handler   *modbus.TCPClientHandler
}

// Option configures a Driver.
type Option func(*Driver)

// WithTags supplies the nickname index, usually built from the tagfile
// package's loader. Without it, nickname keys and GetAll fail with
// ErrTagsUnavailable.
func WithTags(idx *TagIndex) Option {
	return func(d *Driver) { d.tags = idx }
}

// New creates a driver over an existing transport. Use this with a
// Simulator, or to share a customized grid-x handler.
func New(t Transport, opts ...Option) *Driver {
	d := &Driver{transport: t}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dial connects to a ClickPLC at address, e.g. "192.168.0.10:502", and
// returns a ready driver. Close releases the connection.
func Dial(address string, opts ...Option) (*Driver, error) {
	handler := modbus.NewTCPClientHandler(address)
	if err := handler.Connect(context.Background()); err != nil {
		return nil, err
	}
	d := New(NewTransport(modbus.NewClient(handler)), opts...)
	d.handler = handler
	return d, nil
}

// Close shuts down the connection opened by Dial. On drivers built with
// New it is a no-op: whoever owns the transport closes it.
func (d *Driver) Close() error {
	if d.handler != nil {
		return d.handler.Close()
	}
	return nil
}

// Tags returns the nickname index, or nil when none was supplied.
func (d *Driver) Tags() *TagIndex { return d.tags }

// Get reads one address ("df1"), a range ("df1-df20", "y101-y316") or a
// nickname. A single address or nickname yields its scalar value; a range
// yields a map of address label to value. The empty key reads every
// nicknamed address, like GetAll.
func (d *Driver) Get(ctx context.Context, key string) (Value, error) {
	if key == "" {
		return d.GetAll(ctx)
	}
	if d.tags != nil {
		if e, ok := d.tags.lookup(key); ok {
			return d.readOne(ctx, e.Category, e.Index)
		}
	}
	r, err := Parse(key)
	if err != nil {
		return nil, d.keyError(key, err)
	}
	values, err := planner{d.transport}.readRange(ctx, r)
	if err != nil {
		return nil, err
	}
	if r.Start == r.End && !strings.Contains(key, "-") {
		return values[0], nil
	}
	out := make(map[string]Value, len(values))
	for i, label := range r.Labels() {
		out[label] = values[i]
	}
	return out, nil
}

// GetAll reads every nicknamed address and returns nickname to value.
// Maps carry no order; iterate Tags().All() to recover tag-source order.
func (d *Driver) GetAll(ctx context.Context) (map[string]Value, error) {
	if d.tags == nil {
		return nil, fmt.Errorf("clickplc: get all: %w", ErrTagsUnavailable)
	}
	out := make(map[string]Value, d.tags.Len())
	for _, nickname := range d.tags.All() {
		e, _ := d.tags.lookup(nickname)
		v, err := d.readOne(ctx, e.Category, e.Index)
		if err != nil {
			return nil, err
		}
		out[nickname] = v
	}
	return out, nil
}

// Set writes one or more values starting at key, which may be an address,
// a range or a nickname. A range must be given exactly as many values as it
// spans. A single address with several values writes that address and the
// ones following it: Set(ctx, "df1", 0.0, 0.0, 0.0) writes df1 through df3.
// All validation and encoding happens before any device traffic.
func (d *Driver) Set(ctx context.Context, key string, values ...Value) error {
	if len(values) == 0 {
		return fmt.Errorf("clickplc: set %q with no values: %w", key, ErrValueCount)
	}
	r, ranged, err := d.resolve(key)
	if err != nil {
		return err
	}
	if !ranged && len(values) > 1 {
		// Implicit range: grow from the start address to fit the values.
		end := r.Start
		for i := 1; i < len(values); i++ {
			end = r.Category.next(end)
		}
		if !r.Category.valid(end) {
			return fmt.Errorf("clickplc: %d values from %s run past %s%d: %w",
				len(values), r, r.Category, descriptors[r.Category].max, ErrValueCount)
		}
		r.End = end
	}
	return planner{d.transport}.writeRange(ctx, r, values)
}

// resolve maps a key to its address range. ranged reports whether the key
// explicitly addressed a range rather than a single point.
func (d *Driver) resolve(key string) (r AddressRange, ranged bool, err error) {
	if d.tags != nil {
		if e, ok := d.tags.lookup(key); ok {
			return AddressRange{Category: e.Category, Start: e.Index, End: e.Index}, false, nil
		}
	}
	r, err = Parse(key)
	if err != nil {
		return AddressRange{}, false, d.keyError(key, err)
	}
	return r, strings.Contains(key, "-"), nil
}

// readOne reads a single resolved address.
func (d *Driver) readOne(ctx context.Context, c Category, index int) (Value, error) {
	values, err := planner{d.transport}.readRange(ctx, AddressRange{Category: c, Start: index, End: index})
	if err != nil {
		return nil, err
	}
	return values[0], nil
}

// keyError reshapes a parse failure: when tags are loaded and the key does
// not even look like an address, the caller most likely misspelled a
// nickname.
func (d *Driver) keyError(key string, parseErr error) error {
	if d.tags != nil &&
		(errors.Is(parseErr, ErrUnsupportedCategory) || !strings.ContainsAny(key, "0123456789")) {
		return fmt.Errorf("clickplc: %q: %w", key, ErrUnknownNickname)
	}
	return parseErr
}
