/*
Package clickplc provides a client driver for Koyo/AutomationDirect ClickPLC
Ethernet units over Modbus TCP.

Addresses use the Click programming software's internal variable notation,
as shown in its Address Picker: a category tag followed by a 1-based index,
e.g. "x101", "c16", "df1". A hyphenated token addresses a range within one
category, e.g. "df1-df20". When a nickname export from the Click software
has been loaded (see the tagfile package), nicknames may be used in place
of addresses.
*/
package clickplc

import "errors"

// Value is a typed datum read from or written to the PLC. Its concrete type
// depends on the address category: bool for X, Y and C, int16 for DS,
// int32 for CTD and float32 for DF.
type Value = any

// Errors returned by the driver. All are wrapped with address or value
// context, so match with errors.Is.
var (
	// ErrInvalidAddress flags a malformed or out-of-bounds address token.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrUnsupportedCategory flags a category tag outside the supported set.
	ErrUnsupportedCategory = errors.New("unsupported category")
	// ErrUnknownNickname flags a nickname absent from the tag index.
	ErrUnknownNickname = errors.New("unknown nickname")
	// ErrTagsUnavailable flags a nickname operation on a driver built
	// without a tag index.
	ErrTagsUnavailable = errors.New("no tags loaded")
	// ErrValueRange flags a value that does not fit the category's type.
	ErrValueRange = errors.New("value out of range")
	// ErrValueCount flags a write whose value count does not match the
	// addressed range.
	ErrValueCount = errors.New("value count mismatch")
	// ErrDuplicateNickname flags a nickname bound twice in one tag source.
	ErrDuplicateNickname = errors.New("duplicate nickname")
	// ErrCodecLength reports a word slice of the wrong length for its
	// category. The planner always hands the codec correctly sized
	// slices, so seeing this error means a driver defect, not bad input.
	ErrCodecLength = errors.New("codec length mismatch")
)
