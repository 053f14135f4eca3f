package fields

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Price is a decimal amount stored as numeric(10,2). It is rendered in JSON as a
// number with the exact scale kept by the database ("12.50" stays 12.50).
type Price pgtype.Numeric

func NewPrice(s string) (Price, error) {
	var n pgtype.Numeric
	if err := n.Scan(strings.TrimSpace(s)); err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return Price{}, fmt.Errorf("invalid price %q: must be a finite number", s)
	}
	return Price(n), nil
}

// MaxPrice is the largest magnitude numeric(10,2) can hold.
const MaxPrice = "99999999.99"

// priceOverflow is the smallest magnitude that rounds past MaxPrice at scale 2.
var priceOverflow = big.NewRat(99999999995, 1000)

func (p Price) IsSet() bool {
	return p.Valid
}

func (p Price) IsNegative() bool {
	return p.Valid && p.Int != nil && p.Int.Sign() < 0
}

// InRange reports whether the price fits numeric(10,2) once rounded to cents.
// An unset price is in range.
func (p Price) InRange() bool {
	if !p.Valid || p.Int == nil {
		return true
	}
	r := new(big.Rat).SetInt(p.Int)
	if p.Exp != 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(p.Exp))), nil)
		if p.Exp > 0 {
			r.Mul(r, new(big.Rat).SetInt(scale))
		} else {
			r.Quo(r, new(big.Rat).SetInt(scale))
		}
	}
	return r.Abs(r).Cmp(priceOverflow) < 0
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func (p Price) String() string {
	n := pgtype.Numeric(p)
	if !n.Valid {
		return ""
	}
	if n.NaN {
		return "NaN"
	}
	if n.Int == nil {
		return "0"
	}
	digits := n.Int.String()
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if n.Exp >= 0 {
		digits += strings.Repeat("0", int(n.Exp))
	} else {
		scale := int(-n.Exp)
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	if p.NaN || p.InfinityModifier != pgtype.Finite {
		return nil, errors.New("price is not a finite number")
	}
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		raw = unquoted
	}
	parsed, err := NewPrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ScanNumeric implements pgtype.NumericScanner.
func (p *Price) ScanNumeric(v pgtype.Numeric) error {
	*p = Price(v)
	return nil
}

// NumericValue implements pgtype.NumericValuer.
func (p Price) NumericValue() (pgtype.Numeric, error) {
	return pgtype.Numeric(p), nil
}
