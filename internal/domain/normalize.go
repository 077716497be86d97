package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxAmount is the ceiling on any single monetary field (₹10^11). Amounts
// above it are rejected as out of range rather than silently truncated.
var MaxAmount = decimal.New(1, 11)

// Normalize coerces a heterogeneous raw value into an exact decimal amount.
//
//   - nil and "" normalize to 0
//   - numbers pass through exactly
//   - strings may carry grouping separators ("1,50,000") or a leading ₹
//   - booleans are rejected: they must never reach a numeric field
//   - negative amounts and amounts above MaxAmount are rejected
func Normalize(v any) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case bool:
		return decimal.Zero, fmt.Errorf("boolean in numeric field: %w", ErrInvalidInputKind)
	case decimal.Decimal:
		d = val
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case float64:
		d = decimal.NewFromFloat(val)
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("unparseable number %q: %w", val, ErrInvalidInputKind)
		}
		d = parsed
	case string:
		cleaned := strings.TrimSpace(val)
		cleaned = strings.TrimPrefix(cleaned, "₹")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == "" {
			return decimal.Zero, nil
		}
		parsed, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, fmt.Errorf("unparseable amount %q: %w", val, ErrInvalidInputKind)
		}
		d = parsed
	default:
		return decimal.Zero, fmt.Errorf("unsupported type %T in numeric field: %w", v, ErrInvalidInputKind)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative amount %s: %w", d, ErrOutOfRange)
	}
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("amount %s exceeds ceiling: %w", d, ErrOutOfRange)
	}
	return d, nil
}

// Rupees is a non-negative monetary amount with currency precision. It
// unmarshals from plain numbers as well as grouped strings and rejects
// booleans, so malformed form input fails at decode time.
type Rupees struct {
	decimal.Decimal
}

// NewRupees builds a Rupees from an int for literals in code and tests.
func NewRupees(v int64) Rupees { return Rupees{decimal.NewFromInt(v)} }

// RupeesFromDecimal wraps an existing decimal.
func RupeesFromDecimal(d decimal.Decimal) Rupees { return Rupees{d} }

// UnmarshalYAML accepts numbers and grouped strings.
func (r *Rupees) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	d, err := Normalize(raw)
	if err != nil {
		return err
	}
	r.Decimal = d
	return nil
}

// UnmarshalJSON accepts numbers, grouped strings and null.
func (r *Rupees) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	d, err := Normalize(raw)
	if err != nil {
		return err
	}
	r.Decimal = d
	return nil
}

// MarshalJSON renders the plain decimal value.
func (r Rupees) MarshalJSON() ([]byte, error) {
	return []byte(r.Decimal.String()), nil
}

// MarshalYAML renders the plain decimal value.
func (r Rupees) MarshalYAML() (any, error) {
	return r.Decimal.String(), nil
}
