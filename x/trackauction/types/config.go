package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Config is the module's singleton configuration: the one NFT contract whose
// tracks may be auctioned, and the settlement asset every bid must use. It
// is written once at genesis and read by every create and bid operation.
type Config struct {
	WhitelistedNftContract string     `json:"whitelisted_nft_contract"`
	PriceAsset             PriceAsset `json:"price_asset"`
}

// NewConfig creates a module Config
func NewConfig(whitelistedNftContract string, priceAsset PriceAsset) Config {
	return Config{
		WhitelistedNftContract: whitelistedNftContract,
		PriceAsset:             priceAsset,
	}
}

// ValidateBasic performs stateless checks on the config
func (c Config) ValidateBasic() error {
	if c.WhitelistedNftContract == "" {
		return errorsmod.Wrap(ErrInvalidConfig, "empty whitelisted NFT contract")
	}
	if c.PriceAsset == nil {
		return errorsmod.Wrap(ErrInvalidConfig, "price asset must be set")
	}
	if err := c.PriceAsset.Validate(); err != nil {
		return err
	}
	return nil
}
