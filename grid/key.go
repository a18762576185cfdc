package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator joins row and col in the textual key form. It never appears in
// the base-10 rendering of an integer.
const KeySeparator = ","

// Coord addresses a single cell. Rows grow downward, columns to the right;
// both are unbounded in either direction.
type Coord struct {
	Row, Col int
}

// Key returns the textual key for c
func (c Coord) Key() string {
	return EncodeKey(c.Row, c.Col)
}

func (c Coord) String() string {
	return c.Key()
}

// MalformedKeyError reports a key that does not decode into a coordinate
type MalformedKeyError struct {
	Key    string
	Reason string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed cell key %q: %s", e.Key, e.Reason)
}

// EncodeKey formats a coordinate as "row,col"
func EncodeKey(row, col int) string {
	return strconv.Itoa(row) + KeySeparator + strconv.Itoa(col)
}

// DecodeKey is the inverse of EncodeKey
func DecodeKey(key string) (row, col int, err error) {
	parts := strings.Split(key, KeySeparator)
	if len(parts) != 2 {
		return 0, 0, &MalformedKeyError{Key: key, Reason: fmt.Sprintf("expected 2 components, got %d", len(parts))}
	}

	row, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, &MalformedKeyError{Key: key, Reason: "row is not an integer"}
	}
	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, &MalformedKeyError{Key: key, Reason: "col is not an integer"}
	}
	return row, col, nil
}

// ParseCoord decodes a textual key into a Coord
func ParseCoord(key string) (Coord, error) {
	row, col, err := DecodeKey(key)
	if err != nil {
		return Coord{}, err
	}
	return Coord{Row: row, Col: col}, nil
}
