package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PriceAsset is the settlement asset of an auction: either a native ledger
// denom or a fungible token contract. The variant set is closed, every
// consumer must handle both cases exhaustively.
type PriceAsset interface {
	isPriceAsset()

	// Equal reports whether the other asset is the same variant with the
	// same payload
	Equal(other PriceAsset) bool

	Validate() error
	String() string
}

// NativePriceAsset settles auctions in a native ledger coin
type NativePriceAsset struct {
	Denom string `json:"denom"`
}

// TokenPriceAsset settles auctions in a fungible token managed by an
// external token contract
type TokenPriceAsset struct {
	TokenContract string `json:"token_contract"`
}

// nolint: exhaustruct
var (
	_ PriceAsset = NativePriceAsset{}
	_ PriceAsset = TokenPriceAsset{}
)

// NewNativePriceAsset creates the native-denom PriceAsset variant
func NewNativePriceAsset(denom string) NativePriceAsset {
	return NativePriceAsset{Denom: denom}
}

// NewTokenPriceAsset creates the fungible-token PriceAsset variant
func NewTokenPriceAsset(tokenContract string) TokenPriceAsset {
	return TokenPriceAsset{TokenContract: tokenContract}
}

func (NativePriceAsset) isPriceAsset() {}

func (a NativePriceAsset) Equal(other PriceAsset) bool {
	o, ok := other.(NativePriceAsset)
	return ok && o.Denom == a.Denom
}

func (a NativePriceAsset) Validate() error {
	if err := sdk.ValidateDenom(a.Denom); err != nil {
		return errorsmod.Wrapf(ErrInvalidConfig, "invalid price asset denom: %v", err)
	}
	return nil
}

func (a NativePriceAsset) String() string {
	return fmt.Sprintf("native(%s)", a.Denom)
}

func (TokenPriceAsset) isPriceAsset() {}

func (a TokenPriceAsset) Equal(other PriceAsset) bool {
	o, ok := other.(TokenPriceAsset)
	return ok && o.TokenContract == a.TokenContract
}

func (a TokenPriceAsset) Validate() error {
	if a.TokenContract == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "empty price asset token contract")
	}
	return nil
}

func (a TokenPriceAsset) String() string {
	return fmt.Sprintf("token(%s)", a.TokenContract)
}
