package pairdata

import (
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// MetaStable extracts pair data from a meta-stable pool. Shape matches
// Stable, but every scaling factor folds in the token's price rate so that
// rate-adjusted assets are priced at their underlying value.
func MetaStable(pool model.Pool, tokenIn, tokenOut string) (StablePairData, error) {
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
		ScalingFactors: rateAdjustedScalingFactors(pool),
	}, nil
}
