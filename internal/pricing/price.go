// Package pricing holds the price rule shared by the catalog API and the cart:
// brand feeds deliver prices as formatted strings ("Rs.3,990") or bare
// numbers, and both sides must agree on the numeric amount.
package pricing

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse converts a price in any of the shapes found in brand feeds to a
// numeric amount. Unsupported or unparsable values yield 0.
func Parse(v interface{}) float64 {
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int32:
		return float64(p)
	case int64:
		return float64(p)
	case json.Number:
		return ParseString(p.String())
	case string:
		return ParseString(p)
	case Price:
		return p.Amount()
	case *Price:
		if p == nil {
			return 0
		}
		return p.Amount()
	default:
		return 0
	}
}

// ParseString strips every character that is not a digit or a decimal point
// and reads the leading number of what remains. A point directly after a
// letter ends an abbreviation ("Rs.") and is dropped with it.
func ParseString(s string) float64 {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !unicode.IsLetter(prev):
			b.WriteRune(r)
		}
		prev = r
	}

	num := leadingNumber(b.String())
	if num == "" {
		return 0
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// leadingNumber returns the longest "digits[.digits]" prefix of s, normalized
// so decimal can parse it. Returns "" when the prefix holds no digit.
func leadingNumber(s string) string {
	end := 0
	digits := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
			end++
			continue
		}
		digits++
		end++
	}
	if digits == 0 {
		return ""
	}

	num := strings.TrimSuffix(s[:end], ".")
	if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	return num
}

// Price is a catalog price exactly as the brand feed stored it: either a
// formatted string or a bare JSON number. It round-trips through JSON without
// changing shape.
type Price struct {
	text     string
	number   json.Number
	isNumber bool
	set      bool
}

// StringPrice wraps a formatted price such as "Rs.3,990".
func StringPrice(s string) Price {
	return Price{text: s, set: true}
}

// NumberPrice wraps a bare numeric price.
func NumberPrice(f float64) Price {
	return Price{number: json.Number(decimal.NewFromFloat(f).String()), isNumber: true, set: true}
}

// Amount applies the price rule to p.
func (p Price) Amount() float64 {
	if !p.set {
		return 0
	}
	if p.isNumber {
		d, err := decimal.NewFromString(p.number.String())
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	}
	return ParseString(p.text)
}

// IsZero reports whether no price was supplied.
func (p Price) IsZero() bool {
	return !p.set
}

// IsNumber reports whether the feed supplied a bare number.
func (p Price) IsNumber() bool {
	return p.isNumber
}

func (p Price) String() string {
	if p.isNumber {
		return p.number.String()
	}
	return p.text
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch {
	case !p.set:
		return []byte("null"), nil
	case p.isNumber:
		return []byte(p.number.String()), nil
	default:
		return json.Marshal(p.text)
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = StringPrice(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return err
	}
	*p = Price{number: n, isNumber: true, set: true}
	return nil
}
