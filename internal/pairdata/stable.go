package pairdata

import (
	"math/big"

	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// StablePairData is the bundle a stable-math formula needs. The stable
// invariant is computed jointly over all pool balances, so the full balance
// and scaling-factor vectors travel with the pair, in pool token order.
type StablePairData struct {
	TokenIn        string
	TokenOut       string
	TokenIndexIn   int
	TokenIndexOut  int
	Amp            *big.Int
	Balances       []*big.Int
	SwapFee        *big.Int
	ScalingFactors []*big.Int
}

// Stable extracts pair data from a stable pool using plain decimals-based
// scaling factors.
func Stable(pool model.Pool, tokenIn, tokenOut string) (StablePairData, error) {
	indexIn, indexOut, err := tokenIndices(pool, tokenIn, tokenOut)
	if err != nil {
		return StablePairData{}, err
	}

	return StablePairData{
		TokenIn:        tokenIn,
		TokenOut:       tokenOut,
		TokenIndexIn:   indexIn,
		TokenIndexOut:  indexOut,
		Amp:            pool.Amp,
		Balances:       balances(pool),
		SwapFee:        pool.SwapFee,
		ScalingFactors: scalingFactors(pool),
	}, nil
}
