package model

import "math/big"

// Token is one canonical pool constituent. Balance keeps the token's native
// decimal precision; Weight and PriceRate are 18-decimal scaled.
type Token struct {
	Address   string
	Balance   *big.Int
	Decimals  uint8
	PriceRate *big.Int
	Weight    *big.Int
}

// Pool is a canonical pool: every numeric field a scaled integer, every
// variant-specific field present with a zero sentinel when not applicable.
// Constructed once per raw record and read-only afterwards; Tokens order is
// the index space all extractors refer to.
type Pool struct {
	ID           string
	Address      string
	PoolType     PoolType
	SwapFee      *big.Int
	SwapEnabled  bool
	Tokens       []Token
	TokensList   []string
	TotalWeight  *big.Int
	Amp          *big.Int
	MainIndex    int
	WrappedIndex int
	LowerTarget  *big.Int
	UpperTarget  *big.Int
}
