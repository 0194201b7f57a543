package addr

import (
	"errors"
	"testing"
)

const (
	dai  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	usdc = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

func TestEqualIgnoresCase(t *testing.T) {
	same, err := Equal(dai, "0x6b175474e89094c44da98b954eedeac495271d0f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !same {
		t.Fatalf("case-variant addresses should be equal")
	}

	same, err = Equal(dai, usdc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same {
		t.Fatalf("different addresses should not be equal")
	}
}

func TestEqualInvalidAddress(t *testing.T) {
	if _, err := Equal("not-an-address", dai); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	if _, err := Equal(dai, "0x1234"); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("0x6b175474e89094c44da98b954eedeac495271d0f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dai {
		t.Fatalf("Canonical = %s, want %s", got, dai)
	}

	if _, err := Canonical(""); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}
