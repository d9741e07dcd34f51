package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind discriminates the variants of a Cell.
type CellKind int

const (
	CellAbsent CellKind = iota
	CellString
	CellNumber
)

// Cell is one value of an uploaded row. Upstream files are loosely typed,
// so a cell is either a string, a number, or absent, and every consumer
// goes through the total coercions below instead of type-asserting.
type Cell struct {
	kind CellKind
	str  string
	num  float64
}

// StringCell creates a string-valued cell.
func StringCell(s string) Cell {
	return Cell{kind: CellString, str: s}
}

// NumberCell creates a number-valued cell.
func NumberCell(f float64) Cell {
	return Cell{kind: CellNumber, num: f}
}

// AbsentCell creates an absent cell.
func AbsentCell() Cell {
	return Cell{kind: CellAbsent}
}

// Kind returns the cell's variant.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsAbsent reports whether the cell holds no value.
func (c Cell) IsAbsent() bool {
	return c.kind == CellAbsent
}

// Text coerces the cell to a trimmed string. Absent cells yield "".
// This never fails; it is the single path every parser stage uses to
// read a cell as text.
func (c Cell) Text() string {
	switch c.kind {
	case CellString:
		return strings.TrimSpace(c.str)
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Float coerces the cell to a number. Non-numeric strings and absent
// cells yield 0; this never fails.
func (c Cell) Float() float64 {
	switch c.kind {
	case CellNumber:
		return c.num
	case CellString:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.str), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// MarshalJSON writes the cell back as the primitive it holds.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case CellString:
		return json.Marshal(c.str)
	case CellNumber:
		return json.Marshal(c.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any JSON primitive. Booleans are kept as their
// text form; objects and arrays are treated as absent.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		*c = StringCell(val)
	case float64:
		*c = NumberCell(val)
	case bool:
		*c = StringCell(strconv.FormatBool(val))
	default:
		*c = AbsentCell()
	}
	return nil
}
