package pairdata

import (
	"math/big"

	"github.com/bogdoslavik/balancer-sor/internal/model"
)

// LinearPairData extends the phantom-stable bundle with the main/wrapped
// asset positions and the bonding-curve targets that delimit a linear pool's
// three pricing regions.
type LinearPairData struct {
	PhantomStablePairData
	MainIndex    int
	WrappedIndex int
	LowerTarget  *big.Int
	UpperTarget  *big.Int
}

// Linear extracts pair data from a linear pool.
func Linear(pool model.Pool, tokenIn, tokenOut string) (LinearPairData, error) {
	phantom, err := PhantomStable(pool, tokenIn, tokenOut)
	if err != nil {
		return LinearPairData{}, err
	}

	return LinearPairData{
		PhantomStablePairData: phantom,
		MainIndex:             pool.MainIndex,
		WrappedIndex:          pool.WrappedIndex,
		LowerTarget:           pool.LowerTarget,
		UpperTarget:           pool.UpperTarget,
	}, nil
}
