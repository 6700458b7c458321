package clickplc

import (
	"context"
	"sync"
)

// Simulator is an in-memory Transport backed by maps instead of a device.
// Unwritten coils read false and unwritten registers read zero, like a
// freshly cleared PLC. It serializes access, so it is safe for concurrent
// callers, and it lets the driver be exercised with no PLC on the network.
type Simulator struct {
	mu    sync.Mutex
	coils map[uint16]bool
	regs  map[uint16]uint16
}

// NewSimulator creates an empty simulated device.
func NewSimulator() *Simulator {
	return &Simulator{
		coils: make(map[uint16]bool),
		regs:  make(map[uint16]uint16),
	}
}

func (s *Simulator) ReadCoils(_ context.Context, address, count uint16) ([]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bits := make([]bool, count)
	for i := range bits {
		bits[i] = s.coils[address+uint16(i)]
	}
	return bits, nil
}

func (s *Simulator) ReadRegisters(_ context.Context, address, count uint16) ([]uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := make([]uint16, count)
	for i := range words {
		words[i] = s.regs[address+uint16(i)]
	}
	return words, nil
}

func (s *Simulator) WriteCoil(_ context.Context, address uint16, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coils[address] = value
	return nil
}

func (s *Simulator) WriteCoils(_ context.Context, address uint16, values []bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range values {
		s.coils[address+uint16(i)] = v
	}
	return nil
}

func (s *Simulator) WriteRegisters(_ context.Context, address uint16, values []uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range values {
		s.regs[address+uint16(i)] = v
	}
	return nil
}
