// Package normalize converts raw pool-source records into canonical pools
// with all numeric fields expressed as scaled integers.
package normalize

import (
	"fmt"
	"math/big"

	"github.com/bogdoslavik/balancer-sor/internal/fixedpoint"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

const maxTokenDecimals = 18

// Pool builds a canonical pool from a raw record. Construction is
// all-or-nothing: any parse or arithmetic failure fails the whole pool.
// Absent optional fields become zero sentinels; an absent price rate
// defaults to 1.0 at 18-decimal precision.
func Pool(raw model.RawPool) (model.Pool, error) {
	swapFee, err := fixedpoint.ParseFixed(raw.SwapFee, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: swap fee: %w", raw.ID, err)
	}

	totalWeight, err := parseOptional(raw.TotalWeight, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: total weight: %w", raw.ID, err)
	}
	amp, err := parseOptional(raw.Amp, 3)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: amp: %w", raw.ID, err)
	}
	lowerTarget, err := parseOptional(raw.LowerTarget, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: lower target: %w", raw.ID, err)
	}
	upperTarget, err := parseOptional(raw.UpperTarget, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: upper target: %w", raw.ID, err)
	}

	tokens := make([]model.Token, 0, len(raw.Tokens))
	for _, rawToken := range raw.Tokens {
		token, err := normalizeToken(rawToken, totalWeight)
		if err != nil {
			return model.Pool{}, fmt.Errorf("pool %s: token %s: %w", raw.ID, rawToken.Address, err)
		}
		tokens = append(tokens, token)
	}

	tokensList := make([]string, len(raw.TokensList))
	copy(tokensList, raw.TokensList)

	return model.Pool{
		ID:           raw.ID,
		Address:      raw.Address,
		PoolType:     model.PoolType(raw.PoolType),
		SwapFee:      swapFee,
		SwapEnabled:  raw.SwapEnabled,
		Tokens:       tokens,
		TokensList:   tokensList,
		TotalWeight:  totalWeight,
		Amp:          amp,
		MainIndex:    intOrZero(raw.MainIndex),
		WrappedIndex: intOrZero(raw.WrappedIndex),
		LowerTarget:  lowerTarget,
		UpperTarget:  upperTarget,
	}, nil
}

func normalizeToken(raw model.RawToken, totalWeight *big.Int) (model.Token, error) {
	if raw.Decimals > maxTokenDecimals {
		return model.Token{}, fmt.Errorf("decimals %d out of range [0, %d]", raw.Decimals, maxTokenDecimals)
	}

	balance, err := fixedpoint.ParseFixed(raw.Balance, int32(raw.Decimals))
	if err != nil {
		return model.Token{}, fmt.Errorf("balance: %w", err)
	}

	priceRate := fixedpoint.ONE()
	if raw.PriceRate != "" {
		priceRate, err = fixedpoint.ParseFixed(raw.PriceRate, fixedpoint.StandardDecimals)
		if err != nil {
			return model.Token{}, fmt.Errorf("price rate: %w", err)
		}
	}

	weight := big.NewInt(0)
	if raw.Weight != "" {
		rawWeight, err := fixedpoint.ParseFixed(raw.Weight, fixedpoint.StandardDecimals)
		if err != nil {
			return model.Token{}, fmt.Errorf("weight: %w", err)
		}
		weight, err = fixedpoint.DivDown(rawWeight, totalWeight)
		if err != nil {
			return model.Token{}, fmt.Errorf("weight: %w", err)
		}
	}

	return model.Token{
		Address:   raw.Address,
		Balance:   balance,
		Decimals:  raw.Decimals,
		PriceRate: priceRate,
		Weight:    weight,
	}, nil
}

func parseOptional(s string, decimals int32) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	return fixedpoint.ParseFixed(s, decimals)
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
