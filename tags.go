package clickplc

import "fmt"

// TagEntry binds a user-assigned nickname to a device address. Entries
// normally come from the Click software's nickname export via the tagfile
// package, but any source producing them works.
type TagEntry struct {
	Nickname string
	Category Category
	Index    int
}

// TagIndex is an immutable nickname lookup table. It is built once at
// driver construction and safe for concurrent readers.
type TagIndex struct {
	order   []string
	entries map[string]TagEntry
	names   map[addrKey]string
}

type addrKey struct {
	category Category
	index    int
}

// NewTagIndex builds an index from entries, preserving their order.
// Nicknames are case-sensitive and must be unique; addresses are validated
// against their category bounds.
func NewTagIndex(entries []TagEntry) (*TagIndex, error) {
	idx := &TagIndex{
		entries: make(map[string]TagEntry, len(entries)),
		names:   make(map[addrKey]string, len(entries)),
	}
	for _, e := range entries {
		if !e.Category.valid(e.Index) {
			return nil, fmt.Errorf("clickplc: tag %q: %s%d out of bounds: %w",
				e.Nickname, e.Category, e.Index, ErrInvalidAddress)
		}
		if _, ok := idx.entries[e.Nickname]; ok {
			return nil, fmt.Errorf("clickplc: %q: %w", e.Nickname, ErrDuplicateNickname)
		}
		idx.entries[e.Nickname] = e
		idx.names[addrKey{e.Category, e.Index}] = e.Nickname
		idx.order = append(idx.order, e.Nickname)
	}
	return idx, nil
}

// Resolve returns the address bound to nickname.
func (idx *TagIndex) Resolve(nickname string) (Category, int, error) {
	e, ok := idx.entries[nickname]
	if !ok {
		return 0, 0, fmt.Errorf("clickplc: %q: %w", nickname, ErrUnknownNickname)
	}
	return e.Category, e.Index, nil
}

// Nickname returns the name bound to an address, if any. When a tag source
// binds several nicknames to one address, the last one wins.
func (idx *TagIndex) Nickname(c Category, index int) (string, bool) {
	name, ok := idx.names[addrKey{c, index}]
	return name, ok
}

// All returns every nickname in tag-source order.
func (idx *TagIndex) All() []string {
	return append([]string(nil), idx.order...)
}

// Len returns the number of tags in the index.
func (idx *TagIndex) Len() int { return len(idx.order) }

func (idx *TagIndex) lookup(nickname string) (TagEntry, bool) {
	e, ok := idx.entries[nickname]
	return e, ok
}
