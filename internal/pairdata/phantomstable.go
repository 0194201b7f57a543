package pairdata

import (
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// PhantomStablePairData extends the meta-stable bundle for pools whose own
// share token trades inside the pool. BptIndex is the share token's position
// within Tokens (the full identifier list), -1 when the share token is not
// listed.
type PhantomStablePairData struct {
	StablePairData
	Tokens   []string
	BptIndex int
}

// PhantomStable extracts pair data from a phantom/composable-stable pool.
func PhantomStable(pool model.Pool, tokenIn, tokenOut string) (PhantomStablePairData, error) {
	stable, err := MetaStable(pool, tokenIn, tokenOut)
	if err != nil {
		return PhantomStablePairData{}, err
	}

	bptIndex, err := listIndex(pool.TokensList, pool.Address)
	if err != nil {
		return PhantomStablePairData{}, err
	}

	tokens := make([]string, len(pool.TokensList))
	copy(tokens, pool.TokensList)

	return PhantomStablePairData{
		StablePairData: stable,
		Tokens:         tokens,
		BptIndex:       bptIndex,
	}, nil
}
