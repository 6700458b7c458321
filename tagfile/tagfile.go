// Package tagfile loads the nickname CSV exported by the Click programming
// software. The export schema belongs to that software, so all knowledge of
// it stays here: the driver core only ever sees the resulting TagEntry
// slice.
package tagfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grid-x/clickplc"
)

// Load reads the nickname export at path into ordered tag entries.
func Load(path string) ([]clickplc.TagEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse reads CSV rows from r. The first row is a header naming at least
// the Address and Nickname columns; any other columns (data type, comment,
// initial value...) are ignored. Rows without a nickname are skipped, and
// rows addressing categories the driver does not support are skipped
// rather than rejected, since exports routinely cover the whole memory map.
func Parse(r io.Reader) ([]clickplc.TagEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("tagfile: reading header: %w", err)
	}
	addrCol, nickCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "address":
			addrCol = i
		case "nickname":
			nickCol = i
		}
	}
	if addrCol < 0 || nickCol < 0 {
		return nil, fmt.Errorf("tagfile: header %v lacks Address/Nickname columns", header)
	}

	var entries []clickplc.TagEntry
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("tagfile: line %d: %w", line, err)
		}
		if len(row) <= addrCol || len(row) <= nickCol {
			continue
		}
		nickname := strings.TrimSpace(row[nickCol])
		if nickname == "" {
			continue
		}
		rng, err := clickplc.Parse(strings.TrimSpace(row[addrCol]))
		if err != nil {
			if errors.Is(err, clickplc.ErrUnsupportedCategory) {
				continue
			}
			return nil, fmt.Errorf("tagfile: line %d: %w", line, err)
		}
		entries = append(entries, clickplc.TagEntry{
			Nickname: nickname,
			Category: rng.Category,
			Index:    rng.Start,
		})
	}
}
