package fixedpoint

import (
	"errors"
	"math/big"
	"testing"
)

func pow10(exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}

func TestScalingFactor(t *testing.T) {
	cases := []struct {
		decimals uint8
		want     *big.Int
	}{
		{18, pow10(18)},
		{6, pow10(30)},
		{0, pow10(36)},
	}

	for _, tc := range cases {
		got := ScalingFactor(tc.decimals)
		if got.Cmp(tc.want) != 0 {
			t.Fatalf("ScalingFactor(%d) = %s, want %s", tc.decimals, got, tc.want)
		}
	}
}

func TestParseFixed(t *testing.T) {
	got, err := ParseFixed("0.003", 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := new(big.Int).Mul(big.NewInt(3), pow10(15))
	if got.Cmp(want) != 0 {
		t.Fatalf("ParseFixed(0.003, 18) = %s, want %s", got, want)
	}

	got, err = ParseFixed("100", 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(big.NewInt(100_000_000)) != 0 {
		t.Fatalf("ParseFixed(100, 6) = %s, want 100000000", got)
	}

	// Excess fractional digits are truncated, not rounded.
	got, err = ParseFixed("1.2345", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Cmp(big.NewInt(1234)) != 0 {
		t.Fatalf("ParseFixed(1.2345, 3) = %s, want 1234", got)
	}

	if _, err := ParseFixed("not-a-number", 18); err == nil {
		t.Fatalf("expected error for malformed decimal")
	}
}

func TestMulDownFloors(t *testing.T) {
	got := MulDown(big.NewInt(2), ONE())
	if got.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("MulDown(2, ONE) = %s, want 2", got)
	}

	got = MulDown(big.NewInt(1), big.NewInt(1))
	if got.Sign() != 0 {
		t.Fatalf("MulDown(1, 1) = %s, want 0", got)
	}
}

func TestDivDown(t *testing.T) {
	half, err := DivDown(ONE(), new(big.Int).Mul(big.NewInt(2), ONE()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := new(big.Int).Mul(big.NewInt(5), pow10(17))
	if half.Cmp(want) != 0 {
		t.Fatalf("DivDown(1, 2) = %s, want %s", half, want)
	}

	if _, err := DivDown(ONE(), big.NewInt(0)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	fee := new(big.Int).Mul(big.NewInt(3), pow10(15))
	if got := Format(fee, 18); got != "0.003000000000000000" {
		t.Fatalf("Format fee = %s", got)
	}
	if got := Format(big.NewInt(200_000_000), 6); got != "200.000000" {
		t.Fatalf("Format balance = %s", got)
	}
	if got := Format(big.NewInt(42), 0); got != "42" {
		t.Fatalf("Format integer = %s", got)
	}
	if got := Format(nil, 18); got != "0" {
		t.Fatalf("Format nil = %s", got)
	}
}
