package common

import (
	"fmt"
	"math/big"
	"strings"

	"lukechampine.com/uint128"
)

const (
	NanoDecimals = 30 // 1 Nano = 10^30 raw
	UnitDecimals = 24 // legacy nano (xrb) unit, 10^24 raw
)

var (
	// Ratio is the number of raw in one Nano
	Ratio = pow10(NanoDecimals)
	// UnitRatio is the number of raw in one legacy nano unit
	UnitRatio = pow10(UnitDecimals)
)

// Raw is an amount in the smallest indivisible ledger unit.
// The zero value is 0 raw.
type Raw struct {
	v uint128.Uint128
}

// MaxRaw is the largest representable amount, 2^128-1 raw.
var MaxRaw = Raw{v: uint128.Max}

// RawFromUint64 returns n raw
func RawFromUint64(n uint64) Raw {
	return Raw{v: uint128.From64(n)}
}

// ParseRaw parses a base-10 integer amount of raw.
// Signs, whitespace inside the number and non-digit characters are rejected.
func ParseRaw(s string) (Raw, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Raw{}, fmt.Errorf("empty amount: %w", ErrParse)
	}
	if !isDigits(s) {
		return Raw{}, fmt.Errorf("amount %q is not a decimal integer: %w", s, ErrParse)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Raw{}, fmt.Errorf("amount %q: %w", s, ErrParse)
	}
	return rawFromBig(n)
}

// String returns the amount as a base-10 integer
func (r Raw) String() string {
	return r.v.String()
}

// Big returns the amount as a new big.Int
func (r Raw) Big() *big.Int {
	return r.v.Big()
}

// IsZero reports whether the amount is 0 raw
func (r Raw) IsZero() bool {
	return r.v.IsZero()
}

// Cmp compares r and o.
// Returns: -1 if r < o, 0 if r == o, 1 if r > o
func (r Raw) Cmp(o Raw) int {
	return r.v.Cmp(o.v)
}

// Greater reports whether r > o
func (r Raw) Greater(o Raw) bool {
	return r.Cmp(o) > 0
}

// GreaterOrEqual reports whether r >= o
func (r Raw) GreaterOrEqual(o Raw) bool {
	return r.Cmp(o) >= 0
}

// Add returns r + o, or ErrOverflow if the sum does not fit in 128 bits
func (r Raw) Add(o Raw) (Raw, error) {
	sum := r.v.AddWrap(o.v)
	if sum.Cmp(r.v) < 0 {
		return Raw{}, fmt.Errorf("%s + %s: %w", r, o, ErrOverflow)
	}
	return Raw{v: sum}, nil
}

// Sub returns r - o, or ErrUnderflow if o > r
func (r Raw) Sub(o Raw) (Raw, error) {
	if r.Cmp(o) < 0 {
		return Raw{}, fmt.Errorf("%s - %s: %w", r, o, ErrUnderflow)
	}
	return Raw{v: r.v.SubWrap(o.v)}, nil
}

// BytesBE returns the 16-byte big-endian encoding used by the ledger for balances
func (r Raw) BytesBE() [16]byte {
	var b [16]byte
	r.v.PutBytesBE(b[:])
	return b
}

// ToRaw converts a Nano amount string to raw without float precision loss.
// Fractional digits beyond the 30th are truncated.
// Example: ToRaw("1") = 1000000000000000000000000000000
func ToRaw(nano string) (Raw, error) {
	return ToUnit(nano, NanoDecimals)
}

// ToDisplay converts raw to the shortest exact Nano string
// Example: ToDisplay(1500000000000000000000000000000) = "1.5"
func ToDisplay(raw Raw) string {
	return FromUnit(raw, NanoDecimals)
}

// ToUnit converts a decimal string in a unit of 10^decimals raw to raw.
func ToUnit(amount string, decimals int) (Raw, error) {
	if decimals < 0 {
		return Raw{}, fmt.Errorf("negative decimals %d: %w", decimals, ErrInvalidFormat)
	}
	n, err := parseWithDecimals(amount, decimals)
	if err != nil {
		return Raw{}, err
	}
	return rawFromBig(n)
}

// FromUnit converts raw to a decimal string in a unit of 10^decimals raw.
// Negative decimals are treated as 0.
func FromUnit(raw Raw, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return formatWithDecimals(raw.Big(), decimals)
}

// ConvertUnitToRaw multiplies a whole amount of legacy nano units by UnitRatio.
func ConvertUnitToRaw(units Raw) (Raw, error) {
	return rawFromBig(new(big.Int).Mul(units.Big(), UnitRatio))
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// and dropping trailing fractional zeros.
// Example: formatWithDecimals(24981836000, 9) = "24.981836"
func formatWithDecimals(value *big.Int, decimals int) string {
	s := value.String()
	if decimals == 0 {
		return s
	}

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// parseWithDecimals converts decimal string to integer by removing decimal point
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount: %w", ErrParse)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("amount %q has no digits: %w", s, ErrParse)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("invalid decimal format %q: %w", s, ErrParse)
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else {
		frac = frac[:decimals]
	}

	combined := whole + frac
	if combined == "" {
		combined = "0"
	}
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal format %q: %w", s, ErrParse)
	}
	return n, nil
}

func rawFromBig(n *big.Int) (Raw, error) {
	if n.Sign() < 0 {
		return Raw{}, fmt.Errorf("negative amount %s: %w", n, ErrUnderflow)
	}
	if n.BitLen() > 128 {
		return Raw{}, fmt.Errorf("amount %s exceeds 128 bits: %w", n, ErrOverflow)
	}
	return Raw{v: uint128.FromBig(n)}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
