// Package route builds candidate swap paths over a set of canonical pools.
// Paths carry pool IDs and hop tokens only; pricing them is the swap
// engine's job.
package route

import (
	"github.com/samber/lo"

	"github.com/bogdoslavik/balancer-sor/internal/addr"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// Hop is one pool traversal within a path.
type Hop struct {
	PoolID   string `json:"pool_id"`
	TokenIn  string `json:"token_in"`
	TokenOut string `json:"token_out"`
}

// Path is an ordered list of hops from the trade's input token to its
// output token.
type Path struct {
	Hops []Hop `json:"hops"`
}

// PoolsContaining returns the pools whose token list includes token.
func PoolsContaining(pools []model.Pool, token string) ([]model.Pool, error) {
	canonical, err := addr.Canonical(token)
	if err != nil {
		return nil, err
	}

	out := make([]model.Pool, 0)
	for _, pool := range pools {
		list, err := canonicalList(pool.TokensList)
		if err != nil {
			return nil, err
		}
		if lo.Contains(list, canonical) {
			out = append(out, pool)
		}
	}
	return out, nil
}

// Direct returns single-hop paths through pools holding both pair tokens.
func Direct(pools []model.Pool, tokenIn, tokenOut string) ([]Path, error) {
	holdingIn, err := PoolsContaining(tradable(pools), tokenIn)
	if err != nil {
		return nil, err
	}
	holdingBoth, err := PoolsContaining(holdingIn, tokenOut)
	if err != nil {
		return nil, err
	}

	paths := make([]Path, 0, len(holdingBoth))
	for _, pool := range holdingBoth {
		paths = append(paths, Path{Hops: []Hop{{PoolID: pool.ID, TokenIn: tokenIn, TokenOut: tokenOut}}})
	}
	return paths, nil
}

// OneHop returns two-hop paths through an intermediate asset shared by a
// pool holding the input token and a pool holding the output token.
func OneHop(pools []model.Pool, tokenIn, tokenOut string) ([]Path, error) {
	canonicalIn, err := addr.Canonical(tokenIn)
	if err != nil {
		return nil, err
	}
	canonicalOut, err := addr.Canonical(tokenOut)
	if err != nil {
		return nil, err
	}

	holdingIn, err := PoolsContaining(tradable(pools), tokenIn)
	if err != nil {
		return nil, err
	}
	holdingOut, err := PoolsContaining(tradable(pools), tokenOut)
	if err != nil {
		return nil, err
	}

	paths := make([]Path, 0)
	for _, first := range holdingIn {
		firstTokens, err := canonicalList(first.TokensList)
		if err != nil {
			return nil, err
		}
		for _, second := range holdingOut {
			if first.ID == second.ID {
				continue
			}
			secondTokens, err := canonicalList(second.TokensList)
			if err != nil {
				return nil, err
			}

			shared := lo.Uniq(lo.Intersect(firstTokens, secondTokens))
			for _, mid := range shared {
				if mid == canonicalIn || mid == canonicalOut {
					continue
				}
				paths = append(paths, Path{Hops: []Hop{
					{PoolID: first.ID, TokenIn: tokenIn, TokenOut: mid},
					{PoolID: second.ID, TokenIn: mid, TokenOut: tokenOut},
				}})
			}
		}
	}
	return paths, nil
}

// Candidates returns direct paths plus, when maxHops permits, one-hop paths.
func Candidates(pools []model.Pool, tokenIn, tokenOut string, maxHops int) ([]Path, error) {
	paths, err := Direct(pools, tokenIn, tokenOut)
	if err != nil {
		return nil, err
	}
	if maxHops >= 2 {
		oneHop, err := OneHop(pools, tokenIn, tokenOut)
		if err != nil {
			return nil, err
		}
		paths = append(paths, oneHop...)
	}
	return paths, nil
}

func tradable(pools []model.Pool) []model.Pool {
	return lo.Filter(pools, func(pool model.Pool, _ int) bool {
		return pool.SwapEnabled
	})
}

func canonicalList(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	for _, token := range list {
		canonical, err := addr.Canonical(token)
		if err != nil {
			return nil, err
		}
		out = append(out, canonical)
	}
	return out, nil
}
