// Package fixedpoint provides the scaled-integer arithmetic shared by pool
// normalization and pair-data extraction. Values are *big.Int at a fixed
// decimal precision; the engine's standard precision is 18 decimals.
package fixedpoint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// StandardDecimals is the engine's standard fixed-point precision.
const StandardDecimals = 18

// extendedDecimals is the internal precision swap formulas upscale to.
const extendedDecimals = 36

// ErrDivisionByZero reports a fixed-point division with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

var ten = big.NewInt(10)

// ONE returns 1.0 at 18-decimal precision.
func ONE() *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(StandardDecimals), nil)
}

// ScalingFactor returns the multiplier that lifts a balance stored at the
// token's native precision to the engine's 36-decimal extended precision:
// 10^(36 - decimals). Defined for decimals in [0, 18]; tokens outside that
// range must be rejected upstream.
func ScalingFactor(decimals uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(extendedDecimals-int(decimals))), nil)
}

// MulDown multiplies two 18-decimal fixed-point values, rounding down.
func MulDown(a, b *big.Int) *big.Int {
	out := new(big.Int).Mul(a, b)
	return out.Quo(out, ONE())
}

// DivDown divides two 18-decimal fixed-point values, rounding down.
func DivDown(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	out := new(big.Int).Mul(a, ONE())
	return out.Quo(out, b), nil
}

// ParseFixed converts a decimal string into an integer scaled by
// 10^decimals. Fractional digits beyond the target precision are truncated.
func ParseFixed(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d.Shift(decimals).BigInt(), nil
}

// Format renders a scaled integer back into a decimal string at the given
// precision.
func Format(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	if decimals == 0 {
		return value.String()
	}
	sign := value.Sign()
	abs := new(big.Int).Abs(value)
	denom := new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil)
	rat := new(big.Rat).SetFrac(abs, denom)
	text := rat.FloatString(int(decimals))
	if sign < 0 {
		return "-" + text
	}
	return text
}
