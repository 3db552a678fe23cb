// Package petpooja models the payloads exchanged with the Petpooja POS.
//
// The vendor sends numbers as strings, booleans as "1"/"0" or 1/0 and ids as
// either strings or integers. The scalar types below accept every form and
// never fail: a value that cannot be read falls back to a fixed default so
// one malformed field never rejects a whole menu.
package petpooja

import (
	"bytes"
	"encoding/json"
	"html"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultRank places entries without a readable rank after every ranked one.
const DefaultRank = 999

// ParseFlag reports whether s is one of the vendor's truthy encodings.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// ParseAmount reads a money or coordinate value. Unreadable input yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseRank reads a sort rank. Unreadable input yields DefaultRank.
func ParseRank(s string) int {
	v, ok := parseInt(s)
	if !ok {
		return DefaultRank
	}
	return v
}

// ParseCount reads a non-rank integer such as a selection bound or a
// preparation time. Unreadable input yields 0.
func ParseCount(s string) int {
	v, _ := parseInt(s)
	return v
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// SplitIDs splits a comma separated id list, dropping blanks.
func SplitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// CleanText trims s, decodes HTML entities and normalises it to NFC.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(html.UnescapeString(s)))
}

// FormatAmount renders an amount the way the vendor expects it in requests.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// scalar extracts the textual form of a JSON string, number or boolean.
// Objects, arrays and null produce "".
func scalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	}
	return string(data)
}

type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag(ParseFlag(scalar(data)))
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"1"`), nil
	}
	return []byte(`"0"`), nil
}

// Marker is a response success marker. Only 1 and "1" count as set; the
// looser truthy forms of Flag are rejected.
type Marker bool

func (m *Marker) UnmarshalJSON(data []byte) error {
	*m = Marker(strings.TrimSpace(scalar(data)) == "1")
	return nil
}

func (m Marker) MarshalJSON() ([]byte, error) {
	return Flag(m).MarshalJSON()
}

type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(ParseAmount(scalar(data)))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatAmount(float64(a)))
}

type Rank int

func (r *Rank) UnmarshalJSON(data []byte) error {
	*r = Rank(ParseRank(scalar(data)))
	return nil
}

type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	*c = Count(ParseCount(scalar(data)))
	return nil
}

// ID is a vendor identifier. "0" and "" both mean no reference.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(strings.TrimSpace(scalar(data)))
	return nil
}

func (id ID) IsZero() bool {
	return id == "" || id == "0"
}

func (id ID) String() string {
	return string(id)
}

type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(CleanText(scalar(data)))
	return nil
}

func (t Text) String() string {
	return string(t)
}

// List accepts either a JSON array of scalars or a comma separated string.
type List []string

func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			*l = nil
			return nil
		}
		out := make([]string, 0, len(raw))
		for _, r := range raw {
			if s := CleanText(scalar(r)); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}
	*l = List(SplitIDs(CleanText(scalar(data))))
	return nil
}
