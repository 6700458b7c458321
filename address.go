package clickplc

import (
	"fmt"
	"strconv"
	"strings"
)

// AddressRange identifies a contiguous run of Click addresses within one
// category. Start and End are 1-based user-facing indices; a single address
// has Start == End.
type AddressRange struct {
	Category Category
	Start    int
	End      int
}

// Parse converts an address token into an AddressRange. Tokens are a single
// address ("df1", "y316") or a hyphenated range within one category
// ("df1-df20", "y101-y316"). Parsing is case-insensitive and performs no
// I/O; all bounds checks happen here, before any device traffic.
func Parse(token string) (AddressRange, error) {
	first, second, isRange := strings.Cut(token, "-")
	cat, start, err := parseOne(first)
	if err != nil {
		return AddressRange{}, err
	}
	end := start
	if isRange {
		endCat, n, err := parseOne(second)
		if err != nil {
			return AddressRange{}, err
		}
		if endCat != cat {
			return AddressRange{}, fmt.Errorf("clickplc: inter-category range %q: %w", token, ErrInvalidAddress)
		}
		if n < start {
			return AddressRange{}, fmt.Errorf("clickplc: range %q ends before it starts: %w", token, ErrInvalidAddress)
		}
		end = n
	}
	return AddressRange{Category: cat, Start: start, End: end}, nil
}

// parseOne splits a single address token into its category and index.
func parseOne(s string) (Category, int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	i := strings.IndexAny(s, "0123456789")
	if i <= 0 {
		return 0, 0, fmt.Errorf("clickplc: address %q: %w", s, ErrInvalidAddress)
	}
	cat, err := Lookup(s[:i])
	if err != nil {
		return 0, 0, err
	}
	index, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("clickplc: address %q: %w", s, ErrInvalidAddress)
	}
	if !cat.valid(index) {
		return 0, 0, fmt.Errorf("clickplc: %s%d out of bounds: %w", cat, index, ErrInvalidAddress)
	}
	return cat, index, nil
}

// Len returns the number of addressable points in the range. For grouped
// categories this accounts for the numbering gaps: y101-y316 spans 48
// points, not 216.
func (r AddressRange) Len() int {
	if descriptors[r.Category].grouped {
		return 16*(r.End/100-r.Start/100) + r.End%100 - r.Start%100 + 1
	}
	return r.End - r.Start + 1
}

// Labels returns the user-facing label of every address in the range, in
// ascending order.
func (r AddressRange) Labels() []string {
	labels := make([]string, 0, r.Len())
	for i := r.Start; i <= r.End; i = r.Category.next(i) {
		labels = append(labels, r.Category.label(i))
	}
	return labels
}

// String renders the range back in token form.
func (r AddressRange) String() string {
	if r.Start == r.End {
		return r.Category.label(r.Start)
	}
	return r.Category.label(r.Start) + "-" + r.Category.label(r.End)
}
