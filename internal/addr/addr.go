// Package addr canonicalizes and compares on-chain account identifiers.
package addr

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress reports an identifier that fails hex-address validation.
var ErrInvalidAddress = errors.New("invalid address")

// Equal reports whether a and b denote the same on-chain account,
// ignoring letter case and checksum formatting.
func Equal(a, b string) (bool, error) {
	if !common.IsHexAddress(a) {
		return false, fmt.Errorf("%w: %s", ErrInvalidAddress, a)
	}
	if !common.IsHexAddress(b) {
		return false, fmt.Errorf("%w: %s", ErrInvalidAddress, b)
	}
	return common.HexToAddress(a) == common.HexToAddress(b), nil
}

// Canonical returns the EIP-55 checksum form of an address string.
func Canonical(a string) (string, error) {
	if !common.IsHexAddress(a) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, a)
	}
	return common.HexToAddress(a).Hex(), nil
}
