package tabx

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a single spreadsheet cell value: null, text, number, boolean,
// or timestamp. The zero Value is null.
type Value struct {
	kind    Kind
	text    string
	number  float64
	boolean bool
	ts      time.Time
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Text creates a text Value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number creates a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, number: f} }

// Bool creates a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Timestamp creates a date-time Value.
func Timestamp(t time.Time) Value { return Value{kind: KindTime, ts: t} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Any returns the native Go value: nil, string, float64, bool, or time.Time.
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.number
	case KindBool:
		return v.boolean
	case KindTime:
		return v.ts
	}
	return nil
}

// String renders v as display text. Null renders as the empty string and
// whole numbers render without a decimal point.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindTime:
		return v.ts.Format(time.RFC3339)
	}
	return ""
}

// FromAny converts a native Go value into a Value. Unrecognised types fall
// back to their fmt.Sprint text form.
func FromAny(value any) Value {
	switch v := value.(type) {
	case nil:
		return Null()
	case Value:
		return v
	case string:
		return Text(v)
	case bool:
		return Bool(v)
	case int:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case float32:
		return Number(float64(v))
	case float64:
		return Number(v)
	case time.Time:
		return Timestamp(v)
	}
	return Text(fmt.Sprint(value))
}

// cellTimeLayouts are the formatted-value shapes the codec probes when a
// numeric cell carries a date-like number format.
var cellTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
	"01-02-06",
	"1/2/06 15:04",
}

// parseCellValue classifies a formatted cell string from the codec into a
// typed Value. An empty string is null.
func parseCellValue(formatted string) Value {
	if formatted == "" {
		return Null()
	}
	switch formatted {
	case "TRUE":
		return Bool(true)
	case "FALSE":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(formatted, 64); err == nil {
		return Number(f)
	}
	if looksDated(formatted) {
		for _, layout := range cellTimeLayouts {
			if t, err := time.Parse(layout, formatted); err == nil {
				return Timestamp(t)
			}
		}
	}
	return Text(formatted)
}

// looksDated is a cheap pre-filter before attempting time layouts.
func looksDated(s string) bool {
	if len(s) < 6 {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == '/' || r == ':' || r == ' ' || r == 'T' || r == 'Z' || r == '+' || r == '.':
		default:
			return false
		}
	}
	return digits >= 5 && (strings.ContainsAny(s, "-/"))
}
