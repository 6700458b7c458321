package clickplc

import "fmt"

// Category identifies one of the Click register categories this driver
// supports. The set is closed: each category carries its own Modbus base
// address, data type and numbering scheme, taken from the Click Modbus
// addressing table.
type Category int

const (
	// X is a physical input point (read as a coil).
	X Category = iota
	// Y is a physical output point.
	Y
	// C is an internal control relay.
	C
	// DS is a single-register signed 16-bit integer.
	DS
	// DF is an IEEE-754 float32 spanning two registers.
	DF
	// CTD is a counter current value, a signed 32-bit integer spanning
	// two registers.
	CTD
)

// descriptor is the addressing and decoding rule set for one category.
type descriptor struct {
	tag  string
	coil bool // coil space; otherwise holding-register space
	// base is the zero-indexed Modbus address of the category's first unit.
	base uint16
	// words is the register count per value; zero for coil categories.
	words int
	// max is the highest valid 1-based user index.
	max int
	// grouped marks the X/Y hundreds numbering: points run *01..*16 per
	// hundred but each hundred occupies a 32-coil stride on the wire.
	grouped bool
}

var descriptors = [...]descriptor{
	X:   {tag: "x", coil: true, base: 0, max: 816, grouped: true},
	Y:   {tag: "y", coil: true, base: 8192, max: 816, grouped: true},
	C:   {tag: "c", coil: true, base: 16384, max: 2000},
	DS:  {tag: "ds", base: 0, words: 1, max: 4500},
	DF:  {tag: "df", base: 28672, words: 2, max: 500},
	CTD: {tag: "ctd", base: 49152, words: 2, max: 250},
}

// Lookup maps a category tag such as "df" or "y" to its Category.
func Lookup(tag string) (Category, error) {
	for c, d := range descriptors {
		if d.tag == tag {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("clickplc: category %q: %w", tag, ErrUnsupportedCategory)
}

func (c Category) String() string { return descriptors[c].tag }

// valid reports whether index is an addressable point in this category.
// Grouped categories skip *00 and *17..*99 within each hundred.
func (c Category) valid(index int) bool {
	d := descriptors[c]
	if index < 1 || index > d.max {
		return false
	}
	if d.grouped {
		r := index % 100
		return r >= 1 && r <= 16
	}
	return true
}

// offset converts a 1-based user index into the zero-indexed Modbus
// address. For grouped categories this is not linear: x101 sits at coil 32,
// not coil 16, because each hundred is laid out on a 32-coil stride.
func (c Category) offset(index int) uint16 {
	d := descriptors[c]
	if d.grouped {
		return d.base + uint16(32*(index/100)+index%100-1)
	}
	if d.coil {
		return d.base + uint16(index-1)
	}
	return d.base + uint16(d.words*(index-1))
}

// next returns the following valid user index, hopping the group gap after
// *16 in grouped categories (x116 -> x201).
func (c Category) next(index int) int {
	if descriptors[c].grouped && index%100 == 16 {
		return index + 85
	}
	return index + 1
}

// label renders the user-facing form of an address. Grouped categories are
// zero-padded to three digits ("y101", "x016"), matching the Click software.
func (c Category) label(index int) string {
	if descriptors[c].grouped {
		return fmt.Sprintf("%s%03d", c, index)
	}
	return fmt.Sprintf("%s%d", c, index)
}
