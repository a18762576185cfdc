package grid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ParseText decodes JSON nested arrays of non-negative integers.
// Palette range is checked later by Validate.
func ParseText(text []byte) (Dense, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Row: -1, Col: -1, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Row: -1, Col: -1, Reason: "trailing data after array"}
	}

	rows, ok := raw.([]any)
	if !ok {
		return nil, &ParseError{Row: -1, Col: -1, Reason: fmt.Sprintf("expected an array of rows, got %s", jsonKind(raw))}
	}

	d := make(Dense, 0, len(rows))
	for r, rawRow := range rows {
		cells, ok := rawRow.([]any)
		if !ok {
			return nil, &ParseError{Row: r, Col: -1, Reason: fmt.Sprintf("expected an array, got %s", jsonKind(rawRow))}
		}

		row := make([]int, 0, len(cells))
		for c, cell := range cells {
			n, ok := cell.(json.Number)
			if !ok {
				return nil, &ParseError{Row: r, Col: c, Reason: fmt.Sprintf("expected an integer, got %s", jsonKind(cell))}
			}
			v, err := strconv.Atoi(n.String())
			if err != nil {
				return nil, &ParseError{Row: r, Col: c, Reason: fmt.Sprintf("expected an integer, got %s", n)}
			}
			if v < 0 {
				return nil, &ParseError{Row: r, Col: c, Reason: fmt.Sprintf("negative value %d", v)}
			}
			row = append(row, v)
		}
		d = append(d, row)
	}
	return d, nil
}

// FormatText renders d as compact JSON, e.g. [[0,1],[2,0]]
func FormatText(d Dense) string {
	if len(d) == 0 {
		d = Empty()
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for r, row := range d {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for c, v := range row {
			if c > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(v))
		}
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.String()
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
