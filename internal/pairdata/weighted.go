package pairdata

import (
	"fmt"
	"math/big"

	"github.com/bogdoslavik/balancer-sor/internal/fixedpoint"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// WeightedPairData is the bundle a weighted-math formula needs: only the two
// traded tokens matter.
type WeightedPairData struct {
	TokenIn          string
	TokenOut         string
	TokenIndexIn     int
	TokenIndexOut    int
	BalanceIn        *big.Int
	BalanceOut       *big.Int
	WeightIn         *big.Int
	WeightOut        *big.Int
	SwapFee          *big.Int
	ScalingFactorIn  *big.Int
	ScalingFactorOut *big.Int
}

// Weighted extracts pair data from a weighted-family pool. The pool must
// carry a total weight; a defaulted (zero) total weight means the record was
// not a weighted pool.
func Weighted(pool model.Pool, tokenIn, tokenOut string) (WeightedPairData, error) {
	indexIn, indexOut, err := tokenIndices(pool, tokenIn, tokenOut)
	if err != nil {
		return WeightedPairData{}, err
	}

	if pool.TotalWeight == nil || pool.TotalWeight.Sign() == 0 {
		return WeightedPairData{}, fmt.Errorf("%w: pool %s has no total weight", ErrWrongPoolType, pool.ID)
	}

	in := pool.Tokens[indexIn]
	out := pool.Tokens[indexOut]

	return WeightedPairData{
		TokenIn:          tokenIn,
		TokenOut:         tokenOut,
		TokenIndexIn:     indexIn,
		TokenIndexOut:    indexOut,
		BalanceIn:        in.Balance,
		BalanceOut:       out.Balance,
		WeightIn:         in.Weight,
		WeightOut:        out.Weight,
		SwapFee:          pool.SwapFee,
		ScalingFactorIn:  fixedpoint.ScalingFactor(in.Decimals),
		ScalingFactorOut: fixedpoint.ScalingFactor(out.Decimals),
	}, nil
}
