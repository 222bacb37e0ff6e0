package validation

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var currencyStrip = regexp.MustCompile(`[^0-9.,]`)
var thousandsGrouping = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)

// ParseCurrency converts heterogeneous price input (formatted currency
// strings like "RD$950,000.50", free-text numerics, plain numbers) into a
// canonical value. Unparseable input becomes nil; it never fails. A
// mandatory field that came out nil is rejected later by its schema rule.
func ParseCurrency(v any) *float64 {
	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	case json.Number:
		if f, err := value.Float64(); err == nil {
			return &f
		}
		return nil
	case string:
		return parseCurrencyString(value)
	default:
		return nil
	}
}

func parseCurrencyString(s string) *float64 {
	s = currencyStrip.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return nil
	}
	switch {
	case strings.Contains(s, ".") && strings.Contains(s, ","):
		// Both separators present: the rightmost one is the decimal mark.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Contains(s, ","):
		// "950,000" is a grouped integer; "12,5" is a decimal comma.
		if thousandsGrouping.MatchString(s) {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseInteger coerces string/number input into an int, nil when the
// value is absent or not a whole number.
func ParseInteger(v any) *int {
	f := ParseCurrency(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	if float64(n) != *f {
		return nil
	}
	return &n
}

// Money accepts either a JSON number or a formatted currency string.
// Unmarshaling never fails; garbage decodes to a nil value so the schema
// rules decide whether that is an error.
type Money struct {
	value *float64
}

func NewMoney(f float64) Money {
	return Money{value: &f}
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		m.value = nil
		return nil
	}
	m.value = ParseCurrency(raw)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if m.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*m.value)
}

// Float returns the parsed value, nil when absent or unparseable.
func (m Money) Float() *float64 {
	return m.value
}

// IntCount is the integer counterpart of Money, for fields like months
// or coverage duration that UIs submit as strings.
type IntCount struct {
	value *int
}

func NewIntCount(n int) IntCount {
	return IntCount{value: &n}
}

func (c *IntCount) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		c.value = nil
		return nil
	}
	c.value = ParseInteger(raw)
	return nil
}

func (c IntCount) MarshalJSON() ([]byte, error) {
	if c.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*c.value)
}

func (c IntCount) Int() *int {
	return c.value
}
