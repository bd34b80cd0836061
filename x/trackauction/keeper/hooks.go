package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// OnTrackReceived opens a new auction for a track which has just been
// transferred into the module's custody. The NFT registry invokes it after
// crediting the module with the track; the deposit payload describes the
// auction to open. Returns the id assigned to the new auction.
//
// Only tracks from the whitelisted NFT contract are accepted; a deposit
// from any other contract is rejected and the registry is expected to roll
// the transfer back.
func (k Keeper) OnTrackReceived(
	ctx sdk.Context,
	nftContract string,
	sender string,
	trackTokenId string,
	payload types.CreateAuctionPayload,
) (uint64, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return 0, err
	}
	if nftContract != config.WhitelistedNftContract {
		return 0, errorsmod.Wrapf(types.ErrNftContractNotWhitelisted, "contract %s", nftContract)
	}
	if err := payload.ValidateBasic(); err != nil {
		return 0, err
	}
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return 0, errorsmod.Wrapf(types.ErrUnauthorized, "invalid sender address: %v", err)
	}

	id := k.AllocateAuctionId(ctx)
	auction := types.NewTrackAuction(
		id,
		types.NewBlockRef(ctx),
		payload.Duration,
		sender,
		nftContract,
		trackTokenId,
		payload.MinimumBidAmount,
		config.PriceAsset,
		payload.BuyoutPrice,
	)
	if err := k.SetActiveAuction(ctx, auction); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(
		types.NewEventAuctionCreated(id, sender, trackTokenId, payload.MinimumBidAmount),
	)
	k.Logger(ctx).Info("auction created", "id", id, "creator", sender, "track", trackTokenId)
	return id, nil
}

// OnTokensReceived places a bid funded by fungible tokens which have just
// been transferred into the module's custody. The token registry invokes it
// after crediting the module; the deposit payload names the auction and the
// declared bid amount.
//
// The transferred amount must cover the declared bid. As with native bids,
// any excess over the declared amount is kept by the module.
func (k Keeper) OnTokensReceived(
	ctx sdk.Context,
	tokenContract string,
	sender string,
	amount sdk.Int,
	payload types.BidPayload,
) error {
	if err := payload.ValidateBasic(); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrNoBidFundsSupplied
	}
	if amount.LT(payload.BidAmount) {
		return errorsmod.Wrapf(types.ErrInsufficientBidFunds,
			"supplied %s, bid %s", amount, payload.BidAmount)
	}

	// the tokens are already under the module's balance, no escrow step
	asset := types.NewTokenPriceAsset(tokenContract)
	return k.admitBid(ctx, payload.AuctionId, sender, payload.BidAmount, asset, nil)
}
