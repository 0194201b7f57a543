package normalize

import (
	"errors"
	"math/big"
	"testing"

	"github.com/bogdoslavik/balancer-sor/internal/fixedpoint"
	"github.com/bogdoslavik/balancer-sor/internal/model"
)

const (
	tokenA = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	tokenB = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	tokenC = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
)

func pow10(exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}

func weightedRaw() model.RawPool {
	return model.RawPool{
		ID:          "0xpool1",
		Address:     "0x5c6Ee304399DBdB9C8Ef030aB642B10820DB8F56",
		PoolType:    "Weighted",
		SwapFee:     "0.003",
		SwapEnabled: true,
		Tokens: []model.RawToken{
			{Address: tokenA, Balance: "100", Decimals: 18, Weight: "0.5"},
			{Address: tokenB, Balance: "200", Decimals: 6, Weight: "0.5"},
		},
		TokensList:  []string{tokenA, tokenB},
		TotalWeight: "1",
	}
}

func TestWeightedPoolScenario(t *testing.T) {
	pool, err := Pool(weightedRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFee := new(big.Int).Mul(big.NewInt(3), pow10(15))
	if pool.SwapFee.Cmp(wantFee) != 0 {
		t.Fatalf("swap fee = %s, want %s", pool.SwapFee, wantFee)
	}

	wantWeight := new(big.Int).Mul(big.NewInt(5), pow10(17))
	for i, token := range pool.Tokens {
		if token.Weight.Cmp(wantWeight) != 0 {
			t.Fatalf("token %d weight = %s, want %s", i, token.Weight, wantWeight)
		}
	}

	wantBalance0 := new(big.Int).Mul(big.NewInt(100), pow10(18))
	if pool.Tokens[0].Balance.Cmp(wantBalance0) != 0 {
		t.Fatalf("token 0 balance = %s, want %s", pool.Tokens[0].Balance, wantBalance0)
	}
	wantBalance1 := new(big.Int).Mul(big.NewInt(200), pow10(6))
	if pool.Tokens[1].Balance.Cmp(wantBalance1) != 0 {
		t.Fatalf("token 1 balance = %s, want %s", pool.Tokens[1].Balance, wantBalance1)
	}

	// Absent price rate defaults to 1.0 at 18 decimals.
	if pool.Tokens[0].PriceRate.Cmp(fixedpoint.ONE()) != 0 {
		t.Fatalf("price rate = %s, want %s", pool.Tokens[0].PriceRate, fixedpoint.ONE())
	}
}

func TestWeightsSumToOne(t *testing.T) {
	raw := weightedRaw()
	raw.Tokens = []model.RawToken{
		{Address: tokenA, Balance: "1", Decimals: 18, Weight: "0.3"},
		{Address: tokenB, Balance: "1", Decimals: 6, Weight: "0.3"},
		{Address: tokenC, Balance: "1", Decimals: 18, Weight: "0.4"},
	}
	raw.TokensList = []string{tokenA, tokenB, tokenC}

	pool, err := Pool(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := big.NewInt(0)
	for _, token := range pool.Tokens {
		sum.Add(sum, token.Weight)
	}

	diff := new(big.Int).Sub(fixedpoint.ONE(), sum)
	if diff.Sign() < 0 || diff.Cmp(big.NewInt(int64(len(pool.Tokens)))) > 0 {
		t.Fatalf("weights sum %s too far from %s", sum, fixedpoint.ONE())
	}
}

func TestZeroTotalWeightFailsPool(t *testing.T) {
	raw := weightedRaw()
	raw.TotalWeight = ""

	if _, err := Pool(raw); !errors.Is(err, fixedpoint.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDecimalsOutOfRange(t *testing.T) {
	raw := weightedRaw()
	raw.Tokens[0].Decimals = 19

	if _, err := Pool(raw); err == nil {
		t.Fatalf("expected error for decimals > 18")
	}
}

func TestOptionalFieldsDefaultToSentinels(t *testing.T) {
	raw := model.RawPool{
		ID:          "0xpool2",
		Address:     "0x5c6Ee304399DBdB9C8Ef030aB642B10820DB8F56",
		PoolType:    "Stable",
		SwapFee:     "0.0004",
		SwapEnabled: true,
		Tokens: []model.RawToken{
			{Address: tokenA, Balance: "1000", Decimals: 18},
			{Address: tokenB, Balance: "1000", Decimals: 6},
		},
		TokensList: []string{tokenA, tokenB},
	}

	pool, err := Pool(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pool.TotalWeight.Sign() != 0 || pool.Amp.Sign() != 0 {
		t.Fatalf("absent totalWeight/amp should be zero sentinels")
	}
	if pool.LowerTarget.Sign() != 0 || pool.UpperTarget.Sign() != 0 {
		t.Fatalf("absent targets should be zero sentinels")
	}
	if pool.MainIndex != 0 || pool.WrappedIndex != 0 {
		t.Fatalf("absent indices should default to 0")
	}
	for _, token := range pool.Tokens {
		if token.Weight.Sign() != 0 {
			t.Fatalf("absent weight should be zero sentinel")
		}
	}
}

func TestVariantFieldsParsed(t *testing.T) {
	mainIndex := 1
	wrappedIndex := 2
	raw := model.RawPool{
		ID:          "0xpool3",
		Address:     "0x5c6Ee304399DBdB9C8Ef030aB642B10820DB8F56",
		PoolType:    "AaveLinear",
		SwapFee:     "0.0001",
		SwapEnabled: true,
		Tokens: []model.RawToken{
			{Address: tokenA, Balance: "10", Decimals: 18},
			{Address: tokenB, Balance: "10", Decimals: 6, PriceRate: "1.1"},
		},
		TokensList:   []string{tokenA, tokenB},
		Amp:          "200",
		MainIndex:    &mainIndex,
		WrappedIndex: &wrappedIndex,
		LowerTarget:  "1000",
		UpperTarget:  "2000",
	}

	pool, err := Pool(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pool.Amp.Cmp(big.NewInt(200_000)) != 0 {
		t.Fatalf("amp = %s, want 200000 (3-decimal scaled)", pool.Amp)
	}
	if pool.MainIndex != 1 || pool.WrappedIndex != 2 {
		t.Fatalf("indices = %d/%d, want 1/2", pool.MainIndex, pool.WrappedIndex)
	}
	wantLower := new(big.Int).Mul(big.NewInt(1000), pow10(18))
	if pool.LowerTarget.Cmp(wantLower) != 0 {
		t.Fatalf("lower target = %s, want %s", pool.LowerTarget, wantLower)
	}
	wantRate := new(big.Int).Mul(big.NewInt(11), pow10(17))
	if pool.Tokens[1].PriceRate.Cmp(wantRate) != 0 {
		t.Fatalf("price rate = %s, want %s", pool.Tokens[1].PriceRate, wantRate)
	}
}

func TestMalformedBalanceFailsPool(t *testing.T) {
	raw := weightedRaw()
	raw.Tokens[1].Balance = "garbage"

	if _, err := Pool(raw); err == nil {
		t.Fatalf("expected error for malformed balance")
	}
}
