package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

type Keeper struct {
	storeKey sdk.StoreKey // Unexposed key to access store from sdk.Context

	cdc           *codec.LegacyAmino // The wire codec for state encoding/decoding.
	accountKeeper types.AccountKeeper
	bankKeeper    types.BankKeeper
	trackKeeper   types.TrackNFTKeeper
	tokenKeeper   types.TokenKeeper
}

func NewKeeper(
	storeKey sdk.StoreKey,
	cdc *codec.LegacyAmino,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	trackKeeper types.TrackNFTKeeper,
	tokenKeeper types.TokenKeeper,
) Keeper {
	return Keeper{
		storeKey:      storeKey,
		cdc:           cdc,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		trackKeeper:   trackKeeper,
		tokenKeeper:   tokenKeeper,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetConfig fetches the singleton module configuration, returning
// ErrConfigNotSet if the chain never initialized it
func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyConfig))
	if bz == nil {
		// nolint: exhaustruct
		return types.Config{}, types.ErrConfigNotSet
	}
	var config types.Config
	k.cdc.MustUnmarshal(bz, &config)
	return config, nil
}

// SetConfig stores the singleton module configuration
func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) error {
	if err := config.ValidateBasic(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	store.Set([]byte(types.KeyConfig), k.cdc.MustMarshal(config))
	return nil
}

// lockNativeBidFunds escrows a bidder's native coins under the module account
func (k Keeper) lockNativeBidFunds(ctx sdk.Context, bidder sdk.AccAddress, funds sdk.Coins) error {
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, bidder, types.ModuleName, funds); err != nil {
		return errorsmod.Wrap(err, "unable to escrow bid funds")
	}
	return nil
}

// sendPriceAsset pays out the given amount of the auction's settlement asset
// from the module's holdings to the recipient. Used both for refunding
// displaced bids and for paying the creator on settlement.
func (k Keeper) sendPriceAsset(ctx sdk.Context, asset types.PriceAsset, recipient string, amount sdk.Int) error {
	recipientAcc, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid recipient address: %v", err)
	}
	switch a := asset.(type) {
	case types.NativePriceAsset:
		coins := sdk.NewCoins(sdk.NewCoin(a.Denom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipientAcc, coins); err != nil {
			return errorsmod.Wrap(err, "unable to release native bid funds")
		}
		return nil
	case types.TokenPriceAsset:
		if err := k.tokenKeeper.Transfer(ctx, a.TokenContract, recipientAcc, amount); err != nil {
			return errorsmod.Wrap(err, "unable to release token bid funds")
		}
		return nil
	default:
		// unreachable, the PriceAsset variant set is closed
		return errorsmod.Wrapf(types.ErrInvalidConfig, "unknown price asset %s", asset)
	}
}

// refundActiveBid returns the escrowed funds of an auction's active bid to
// its bidder. No-op when the auction has no bid.
func (k Keeper) refundActiveBid(ctx sdk.Context, auction types.TrackAuction) error {
	if auction.ActiveBid == nil {
		return nil
	}
	bid := auction.ActiveBid
	return k.sendPriceAsset(ctx, bid.Asset, bid.Bidder, bid.Amount)
}

// transferTrack releases the escrowed track NFT to the recipient
func (k Keeper) transferTrack(ctx sdk.Context, auction types.TrackAuction, recipient string) error {
	recipientAcc, err := sdk.AccAddressFromBech32(recipient)
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid recipient address: %v", err)
	}
	if err := k.trackKeeper.TransferTrack(ctx, auction.NftContract, auction.TrackTokenId, recipientAcc); err != nil {
		return errorsmod.Wrap(err, "unable to release track")
	}
	return nil
}
