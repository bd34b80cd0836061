package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// AccountKeeper defines the expected account keeper
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
	GetModuleAccount(ctx sdk.Context, moduleName string) authtypes.ModuleAccountI
}

// BankKeeper defines the expected bank keeper used to escrow and pay out
// native bid funds
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
}

// TrackNFTKeeper defines the expected interface of the track NFT registry.
// Auctioned tracks are held by the module account and released through
// TransferTrack on settlement or cancellation.
type TrackNFTKeeper interface {
	TransferTrack(ctx sdk.Context, nftContract string, trackTokenId string, recipient sdk.AccAddress) error
}

// TokenKeeper defines the expected interface of the fungible token registry
// used when an auction settles in a token rather than a native coin. Token
// bid funds are held under the module's token balance and released through
// Transfer.
type TokenKeeper interface {
	Transfer(ctx sdk.Context, tokenContract string, recipient sdk.AccAddress, amount sdk.Int) error
}
