// Package pairdata extracts, per pool variant, the field bundle a swap
// formula needs to price a trade between two tokens of a canonical pool.
package pairdata

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/bogdoslavik/balancer-sor/internal/addr"
	"github.com/bogdoslavik/balancer-sor/internal/fixedpoint"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

var (
	// ErrTokenNotFound reports a pair token absent from the pool's token list.
	ErrTokenNotFound = errors.New("token not found in pool")
	// ErrWrongPoolType reports a pool missing a field its variant requires.
	ErrWrongPoolType = errors.New("wrong pool type")
)

// ForPool dispatches to the extractor matching the pool's type tag.
func ForPool(pool model.Pool, tokenIn, tokenOut string) (interface{}, error) {
	switch pool.PoolType.Family() {
	case model.FamilyWeighted:
		return Weighted(pool, tokenIn, tokenOut)
	case model.FamilyStable:
		return Stable(pool, tokenIn, tokenOut)
	case model.FamilyMetaStable:
		return MetaStable(pool, tokenIn, tokenOut)
	case model.FamilyPhantomStable:
		return PhantomStable(pool, tokenIn, tokenOut)
	case model.FamilyLinear:
		return Linear(pool, tokenIn, tokenOut)
	default:
		return nil, fmt.Errorf("%w: unsupported pool type %q", ErrWrongPoolType, pool.PoolType)
	}
}

// tokenIndices locates both pair tokens within the pool's token order.
// The degenerate tokenIn == tokenOut pair is not rejected here.
func tokenIndices(pool model.Pool, tokenIn, tokenOut string) (int, int, error) {
	indexIn, err := tokenIndex(pool.Tokens, tokenIn)
	if err != nil {
		return 0, 0, fmt.Errorf("token in %s: %w", tokenIn, err)
	}
	indexOut, err := tokenIndex(pool.Tokens, tokenOut)
	if err != nil {
		return 0, 0, fmt.Errorf("token out %s: %w", tokenOut, err)
	}
	return indexIn, indexOut, nil
}

func tokenIndex(tokens []model.Token, token string) (int, error) {
	for i, candidate := range tokens {
		same, err := addr.Equal(candidate.Address, token)
		if err != nil {
			return 0, err
		}
		if same {
			return i, nil
		}
	}
	return 0, ErrTokenNotFound
}

// listIndex locates token within a token-identifier list, -1 when absent.
func listIndex(list []string, token string) (int, error) {
	for i, candidate := range list {
		same, err := addr.Equal(candidate, token)
		if err != nil {
			return 0, err
		}
		if same {
			return i, nil
		}
	}
	return -1, nil
}

// scalingFactors returns the plain decimals-based scaling factor per token,
// in pool order.
func scalingFactors(pool model.Pool) []*big.Int {
	factors := make([]*big.Int, len(pool.Tokens))
	for i, token := range pool.Tokens {
		factors[i] = fixedpoint.ScalingFactor(token.Decimals)
	}
	return factors
}

// rateAdjustedScalingFactors folds each token's price rate into its scaling
// factor, rounding down.
func rateAdjustedScalingFactors(pool model.Pool) []*big.Int {
	factors := make([]*big.Int, len(pool.Tokens))
	for i, token := range pool.Tokens {
		factors[i] = fixedpoint.MulDown(fixedpoint.ScalingFactor(token.Decimals), token.PriceRate)
	}
	return factors
}

func balances(pool model.Pool) []*big.Int {
	out := make([]*big.Int, len(pool.Tokens))
	for i, token := range pool.Tokens {
		out[i] = token.Balance
	}
	return out
}
