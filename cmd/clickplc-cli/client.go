package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/grid-x/modbus"

	"github.com/grid-x/clickplc"
	"github.com/grid-x/clickplc/tagfile"
)

// newDriver builds a driver from the resolved config: a simulated device
// with -sim, otherwise a connected grid-x TCP handler. The returned closer
// releases the connection.
func newDriver(opt *option) (*clickplc.Driver, io.Closer, error) {
	cfg, err := opt.resolve()
	if err != nil {
		return nil, nil, err
	}

	var opts []clickplc.Option
	if cfg.Tags != "" {
		entries, err := tagfile.Load(cfg.Tags)
		if err != nil {
			return nil, nil, err
		}
		idx, err := clickplc.NewTagIndex(entries)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, clickplc.WithTags(idx))
	}

	if opt.sim {
		return clickplc.New(clickplc.NewSimulator(), opts...), nopCloser{}, nil
	}

	handler := modbus.NewTCPClientHandler(cfg.Address)
	handler.Timeout = cfg.Timeout
	if cfg.SlaveID != 0 {
		handler.SetSlave(byte(cfg.SlaveID))
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if opt.debug {
		handler.Logger = &debugAdapter{logger}
	}
	if err := handler.Connect(context.Background()); err != nil {
		return nil, nil, err
	}

	transport := clickplc.NewTransport(modbus.NewClient(handler))
	if opt.debug {
		transport.Logger = logger
	}
	return clickplc.New(transport, opts...), handler, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseValue converts a command-line argument into the typed value the
// addressed category expects.
func parseValue(c clickplc.Category, s string) (clickplc.Value, error) {
	switch c {
	case clickplc.X, clickplc.Y, clickplc.C:
		switch s {
		case "on":
			return true, nil
		case "off":
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a coil state (true/false/on/off)", s)
		}
		return b, nil
	case clickplc.DF:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("%q is not a float", s)
		}
		return f, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	}
}
