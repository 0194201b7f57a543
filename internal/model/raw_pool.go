package model

// RawToken is one pool constituent as delivered by the pool source,
// with numeric fields as decimal strings.
type RawToken struct {
	Address   string `json:"address"`
	Balance   string `json:"balance"`
	Decimals  uint8  `json:"decimals"`
	Weight    string `json:"weight,omitempty"`
	PriceRate string `json:"priceRate,omitempty"`
}

// RawPool is a pool record as delivered by the pool source. Variant-specific
// fields are absent (empty string / nil) for pools they do not apply to.
type RawPool struct {
	ID           string     `json:"id"`
	Address      string     `json:"address"`
	PoolType     string     `json:"poolType"`
	SwapFee      string     `json:"swapFee"`
	SwapEnabled  bool       `json:"swapEnabled"`
	Tokens       []RawToken `json:"tokens"`
	TokensList   []string   `json:"tokensList"`
	TotalWeight  string     `json:"totalWeight,omitempty"`
	Amp          string     `json:"amp,omitempty"`
	MainIndex    *int       `json:"mainIndex,omitempty"`
	WrappedIndex *int       `json:"wrappedIndex,omitempty"`
	LowerTarget  string     `json:"lowerTarget,omitempty"`
	UpperTarget  string     `json:"upperTarget,omitempty"`
}
