package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
	"pgregory.net/rapid"
)

const maxRawString = "340282366920938463463374607431768211455"

func mustRaw(t *testing.T, s string) Raw {
	t.Helper()
	r, err := ParseRaw(s)
	require.NoError(t, err)
	return r
}

func drawRaw(t *rapid.T, label string) Raw {
	lo := rapid.Uint64().Draw(t, label+"_lo")
	hi := rapid.Uint64().Draw(t, label+"_hi")
	return Raw{v: uint128.New(lo, hi)}
}

func TestToRaw(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000000000000000"},
		{"0", "0"},
		{"1.5", "1500000000000000000000000000000"},
		{"0.000000000000000000000000000001", "1"},
		{".25", "250000000000000000000000000000"},
		{"2.", "2000000000000000000000000000000"},
		{" 3 ", "3000000000000000000000000000000"},
		{"0.0000000000000000000000000000019", "1"},
		{"340282366.920938463463374607431768211455", maxRawString},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToRaw(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToRaw_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrParse},
		{".", ErrParse},
		{"-1", ErrParse},
		{"+1", ErrParse},
		{"1e5", ErrParse},
		{"1.2.3", ErrParse},
		{"abc", ErrParse},
		{"1 000", ErrParse},
		{"340282367", ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ToRaw(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestToDisplay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1000000000000000000000000000000", "1"},
		{"0", "0"},
		{"1", "0.000000000000000000000000000001"},
		{"1500000000000000000000000000000", "1.5"},
		{"10000000000000000000000000000000", "10"},
		{"100000000000000000000000000000000", "100"},
		{"120000000000000000000000000000", "0.12"},
		{maxRawString, "340282366.920938463463374607431768211455"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDisplay(mustRaw(t, tt.raw)))
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		whole := rapid.StringMatching(`0|[1-9][0-9]{0,7}`).Draw(t, "whole")
		x := whole
		if rapid.Bool().Draw(t, "hasFrac") {
			x += "." + rapid.StringMatching(`[0-9]{0,29}[1-9]`).Draw(t, "frac")
		}

		raw, err := ToRaw(x)
		if err != nil {
			t.Fatalf("ToRaw(%q): %v", x, err)
		}
		if got := ToDisplay(raw); got != x {
			t.Fatalf("ToDisplay(ToRaw(%q)) = %q", x, got)
		}
	})
}

func TestParseRaw(t *testing.T) {
	r, err := ParseRaw(maxRawString)
	require.NoError(t, err)
	assert.Equal(t, MaxRaw, r)

	_, err = ParseRaw("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, ErrOverflow)

	for _, in := range []string{"", "1.0", "-5", "0x10", "12a"} {
		_, err := ParseRaw(in)
		assert.ErrorIs(t, err, ErrParse, "input %q", in)
	}
}

func TestAddSub(t *testing.T) {
	a := mustRaw(t, "1000000000000000000000000000000")
	b := mustRaw(t, "1")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000000001", sum.String())

	diff, err := sum.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, b, diff)

	_, err = MaxRaw.Add(RawFromUint64(1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Raw{}.Sub(RawFromUint64(1))
	assert.ErrorIs(t, err, ErrUnderflow)

	// carries from the low word into the high word
	sum, err = RawFromUint64(^uint64(0)).Add(RawFromUint64(1))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", sum.String())
}

func TestAddProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRaw(t, "a")
		b := drawRaw(t, "b")

		ab, errAB := a.Add(b)
		ba, errBA := b.Add(a)
		if (errAB == nil) != (errBA == nil) {
			t.Fatalf("asymmetric overflow: %v vs %v", errAB, errBA)
		}
		if errAB != nil {
			if !errors.Is(errAB, ErrOverflow) {
				t.Fatalf("unexpected error %v", errAB)
			}
			return
		}
		if ab != ba {
			t.Fatalf("%s + %s not commutative", a, b)
		}
		back, err := ab.Sub(b)
		if err != nil || back != a {
			t.Fatalf("(%s + %s) - %s = %s, %v", a, b, b, back, err)
		}
	})
}

func TestCompare(t *testing.T) {
	one := RawFromUint64(1)
	two := RawFromUint64(2)

	assert.Equal(t, -1, one.Cmp(two))
	assert.Equal(t, 0, one.Cmp(one))
	assert.Equal(t, 1, two.Cmp(one))

	assert.True(t, two.Greater(one))
	assert.False(t, one.Greater(one))
	assert.True(t, one.GreaterOrEqual(one))
	assert.False(t, one.GreaterOrEqual(two))
}

func TestConvertUnitToRaw(t *testing.T) {
	got, err := ConvertUnitToRaw(RawFromUint64(1))
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000", got.String())

	got, err = ConvertUnitToRaw(Raw{})
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ConvertUnitToRaw(mustRaw(t, "340282366920939"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestUnitHelpers(t *testing.T) {
	r, err := ToUnit("1.5", 27)
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000000000000", r.String())
	assert.Equal(t, "1.5", FromUnit(r, 27))
	assert.Equal(t, r.String(), FromUnit(r, -3))

	_, err = ToUnit("1", -1)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBytesBE(t *testing.T) {
	b := RawFromUint64(0x0102).BytesBE()
	assert.Equal(t, byte(0x01), b[14])
	assert.Equal(t, byte(0x02), b[15])
	assert.Equal(t, [14]byte{}, [14]byte(b[:14]))
}
