package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type CellKind int

const (
	CellAbsent CellKind = iota
	CellText
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "absent"
	}
}

// Cell is a single grid value: absent, text or number.
type Cell struct {
	kind CellKind
	text string
	num  float64
}

func Absent() Cell          { return Cell{} }
func Text(s string) Cell    { return Cell{kind: CellText, text: s} }
func Number(f float64) Cell { return Cell{kind: CellNumber, num: f} }

func (c Cell) Kind() CellKind { return c.kind }
func (c Cell) IsAbsent() bool { return c.kind == CellAbsent }

// IsEmpty reports absent cells and empty text. A numeric zero is not empty.
func (c Cell) IsEmpty() bool {
	return c.kind == CellAbsent || (c.kind == CellText && c.text == "")
}

// Number returns the value only for numeric cells; text is never coerced.
func (c Cell) Number() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.num, true
}

// Text renders the cell the way the sheet displays it: numbers in their
// shortest form, absent as "".
func (c Cell) Text() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Truthy follows the sheet's loose semantics: absent, "" and 0 are false.
func (c Cell) Truthy() bool {
	switch c.kind {
	case CellText:
		return c.text != ""
	case CellNumber:
		return c.num != 0
	default:
		return false
	}
}

func (c Cell) String() string { return c.Text() }

func (c *Cell) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = Absent()
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Text(s)
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*c = Text(strconv.FormatBool(v))
	case '{', '[':
		// kept verbatim so one odd cell cannot sink the whole table
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*c = Text(buf.String())
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return err
		}
		*c = Number(f)
	}
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case CellText:
		return json.Marshal(c.text)
	case CellNumber:
		return json.Marshal(c.num)
	default:
		return []byte("null"), nil
	}
}
