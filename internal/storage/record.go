package storage

import (
	"fmt"

	"github.com/bogdoslavik/balancer-sor/internal/fixedpoint"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// TokenRecord is one canonical pool token in its storage form, numeric
// fields re-encoded as decimal strings at their documented precision.
type TokenRecord struct {
	Address   string `json:"address"`
	Balance   string `json:"balance"`
	Decimals  uint8  `json:"decimals"`
	PriceRate string `json:"price_rate"`
	Weight    string `json:"weight"`
}

// PoolRecord is a canonical pool in its storage form.
type PoolRecord struct {
	ID           string        `json:"id"`
	Address      string        `json:"address"`
	PoolType     string        `json:"pool_type"`
	SwapFee      string        `json:"swap_fee"`
	SwapEnabled  bool          `json:"swap_enabled"`
	Tokens       []TokenRecord `json:"tokens"`
	TokensList   []string      `json:"tokens_list"`
	TotalWeight  string        `json:"total_weight"`
	Amp          string        `json:"amp"`
	MainIndex    int           `json:"main_index"`
	WrappedIndex int           `json:"wrapped_index"`
	LowerTarget  string        `json:"lower_target"`
	UpperTarget  string        `json:"upper_target"`
}

// FromPool converts a canonical pool into its storage record.
func FromPool(pool model.Pool) PoolRecord {
	tokens := make([]TokenRecord, 0, len(pool.Tokens))
	for _, token := range pool.Tokens {
		tokens = append(tokens, TokenRecord{
			Address:   token.Address,
			Balance:   fixedpoint.Format(token.Balance, token.Decimals),
			Decimals:  token.Decimals,
			PriceRate: fixedpoint.Format(token.PriceRate, fixedpoint.StandardDecimals),
			Weight:    fixedpoint.Format(token.Weight, fixedpoint.StandardDecimals),
		})
	}

	return PoolRecord{
		ID:           pool.ID,
		Address:      pool.Address,
		PoolType:     string(pool.PoolType),
		SwapFee:      fixedpoint.Format(pool.SwapFee, fixedpoint.StandardDecimals),
		SwapEnabled:  pool.SwapEnabled,
		Tokens:       tokens,
		TokensList:   pool.TokensList,
		TotalWeight:  fixedpoint.Format(pool.TotalWeight, fixedpoint.StandardDecimals),
		Amp:          fixedpoint.Format(pool.Amp, 3),
		MainIndex:    pool.MainIndex,
		WrappedIndex: pool.WrappedIndex,
		LowerTarget:  fixedpoint.Format(pool.LowerTarget, fixedpoint.StandardDecimals),
		UpperTarget:  fixedpoint.Format(pool.UpperTarget, fixedpoint.StandardDecimals),
	}
}

// ToPool converts a storage record back into a canonical pool.
func (r PoolRecord) ToPool() (model.Pool, error) {
	swapFee, err := fixedpoint.ParseFixed(r.SwapFee, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: swap fee: %w", r.ID, err)
	}
	totalWeight, err := fixedpoint.ParseFixed(r.TotalWeight, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: total weight: %w", r.ID, err)
	}
	amp, err := fixedpoint.ParseFixed(r.Amp, 3)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: amp: %w", r.ID, err)
	}
	lowerTarget, err := fixedpoint.ParseFixed(r.LowerTarget, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: lower target: %w", r.ID, err)
	}
	upperTarget, err := fixedpoint.ParseFixed(r.UpperTarget, fixedpoint.StandardDecimals)
	if err != nil {
		return model.Pool{}, fmt.Errorf("pool %s: upper target: %w", r.ID, err)
	}

	tokens := make([]model.Token, 0, len(r.Tokens))
	for _, token := range r.Tokens {
		balance, err := fixedpoint.ParseFixed(token.Balance, int32(token.Decimals))
		if err != nil {
			return model.Pool{}, fmt.Errorf("pool %s: token %s: balance: %w", r.ID, token.Address, err)
		}
		priceRate, err := fixedpoint.ParseFixed(token.PriceRate, fixedpoint.StandardDecimals)
		if err != nil {
			return model.Pool{}, fmt.Errorf("pool %s: token %s: price rate: %w", r.ID, token.Address, err)
		}
		weight, err := fixedpoint.ParseFixed(token.Weight, fixedpoint.StandardDecimals)
		if err != nil {
			return model.Pool{}, fmt.Errorf("pool %s: token %s: weight: %w", r.ID, token.Address, err)
		}
		tokens = append(tokens, model.Token{
			Address:   token.Address,
			Balance:   balance,
			Decimals:  token.Decimals,
			PriceRate: priceRate,
			Weight:    weight,
		})
	}

	return model.Pool{
		ID:           r.ID,
		Address:      r.Address,
		PoolType:     model.PoolType(r.PoolType),
		SwapFee:      swapFee,
		SwapEnabled:  r.SwapEnabled,
		Tokens:       tokens,
		TokensList:   r.TokensList,
		TotalWeight:  totalWeight,
		Amp:          amp,
		MainIndex:    r.MainIndex,
		WrappedIndex: r.WrappedIndex,
		LowerTarget:  lowerTarget,
		UpperTarget:  upperTarget,
	}, nil
}
