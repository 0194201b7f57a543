package model

import "strings"

// PoolType is the pool-variant tag carried by pool source records.
type PoolType string

// Pool type tags as emitted by the pool source.
const (
	TypeWeighted               PoolType = "Weighted"
	TypeInvestment             PoolType = "Investment"
	TypeLiquidityBootstrapping PoolType = "LiquidityBootstrapping"
	TypeStable                 PoolType = "Stable"
	TypeMetaStable             PoolType = "MetaStable"
	TypeStablePhantom          PoolType = "StablePhantom"
	TypeComposableStable       PoolType = "ComposableStable"
	TypeAaveLinear             PoolType = "AaveLinear"
	TypeERC4626Linear          PoolType = "ERC4626Linear"
)

// Family groups pool types by the swap formula that prices them.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyWeighted
	FamilyStable
	FamilyMetaStable
	FamilyPhantomStable
	FamilyLinear
)

// Family maps a pool type tag onto its formula family. Linear pool tags are
// open-ended (one per wrapper protocol), so any "*Linear" tag is linear.
func (t PoolType) Family() Family {
	switch t {
	case TypeWeighted, TypeInvestment, TypeLiquidityBootstrapping:
		return FamilyWeighted
	case TypeStable:
		return FamilyStable
	case TypeMetaStable:
		return FamilyMetaStable
	case TypeStablePhantom, TypeComposableStable:
		return FamilyPhantomStable
	}
	if strings.HasSuffix(string(t), "Linear") {
		return FamilyLinear
	}
	return FamilyUnknown
}
