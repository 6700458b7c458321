package clickplc

import (
	"fmt"
	"math"
)

// The Click stores 32-bit quantities low word first ("big byte order,
// little word order" in pymodbus terms). DF1 holding 0.1 reads back as the
// registers [0xCCCD, 0x3DCC], which reassemble to the IEEE-754 bits
// 0x3DCCCCCD. CTD values use the same register order.

// decode converts raw register words into the category's typed value.
// Coil categories never reach the codec; their bits come straight off the
// transport.
func decode(c Category, words []uint16) (Value, error) {
	if n := descriptors[c].words; len(words) != n {
		return nil, fmt.Errorf("clickplc: %s needs %d words, got %d: %w", c, n, len(words), ErrCodecLength)
	}
	switch c {
	case DS:
		return int16(words[0]), nil
	case CTD:
		return int32(uint32(words[1])<<16 | uint32(words[0])), nil
	case DF:
		return math.Float32frombits(uint32(words[1])<<16 | uint32(words[0])), nil
	}
	return nil, fmt.Errorf("clickplc: %s is not a register category: %w", c, ErrCodecLength)
}

// encode converts a typed value into raw register words, coercing the
// common Go numeric types where they fit the category's range.
func encode(c Category, v Value) ([]uint16, error) {
	switch c {
	case DS:
		n, err := toInt(c, v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt16 || n > math.MaxInt16 {
			return nil, fmt.Errorf("clickplc: %v does not fit %s: %w", n, c, ErrValueRange)
		}
		return []uint16{uint16(int16(n))}, nil
	case CTD:
		n, err := toInt(c, v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("clickplc: %v does not fit %s: %w", n, c, ErrValueRange)
		}
		u := uint32(int32(n))
		return []uint16{uint16(u), uint16(u >> 16)}, nil
	case DF:
		f, err := toFloat(c, v)
		if err != nil {
			return nil, err
		}
		bits := math.Float32bits(f)
		return []uint16{uint16(bits), uint16(bits >> 16)}, nil
	}
	return nil, fmt.Errorf("clickplc: %s is not a register category: %w", c, ErrCodecLength)
}

func toBool(c Category, v Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("clickplc: %s takes bool, got %T: %w", c, v, ErrValueRange)
	}
	return b, nil
}

func toInt(c Category, v Value) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return 0, fmt.Errorf("clickplc: %s takes an integer, got %T: %w", c, v, ErrValueRange)
}

func toFloat(c Category, v Value) (float32, error) {
	switch f := v.(type) {
	case float32:
		return f, nil
	case float64:
		return float32(f), nil
	case int:
		return float32(f), nil
	}
	return 0, fmt.Errorf("clickplc: %s takes a float, got %T: %w", c, v, ErrValueRange)
}
