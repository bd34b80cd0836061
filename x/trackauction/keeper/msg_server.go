package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// wrapping the given keeper
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// nolint: exhaustruct
var _ types.MsgServer = msgServer{}

// Bid places a native-asset bid. The attached funds must be a single coin
// covering the declared bid amount; any excess is kept by the module.
func (m msgServer) Bid(c context.Context, msg *types.MsgBid) (*types.MsgBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if len(msg.BidFunds) == 0 {
		return nil, types.ErrNoBidFundsSupplied
	}
	if len(msg.BidFunds) > 1 {
		return nil, errorsmod.Wrapf(types.ErrUnnecessaryAssetsForBid, "%d coins supplied", len(msg.BidFunds))
	}
	supplied := msg.BidFunds[0]
	if supplied.Amount.LT(msg.BidAmount) {
		return nil, errorsmod.Wrapf(types.ErrInsufficientBidFunds,
			"supplied %s, bid %s", supplied.Amount, msg.BidAmount)
	}

	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		return nil, err
	}

	asset := types.NewNativePriceAsset(supplied.Denom)
	err = m.admitBid(ctx, msg.AuctionId, msg.Bidder, msg.BidAmount, asset, func(ctx sdk.Context) error {
		return m.lockNativeBidFunds(ctx, bidder, msg.BidFunds)
	})
	if err != nil {
		return nil, err
	}
	return &types.MsgBidResponse{}, nil
}

// admitBid validates a bid against the auction and, if it is acceptable,
// escrows the funds, refunds the displaced bid and records the new active
// bid. A bid meeting the buyout price settles the auction immediately.
// Every validation runs before any state is touched.
func (k Keeper) admitBid(
	ctx sdk.Context,
	auctionId uint64,
	bidder string,
	amount sdk.Int,
	asset types.PriceAsset,
	escrow func(ctx sdk.Context) error,
) error {
	auction, found := k.GetActiveAuction(ctx, auctionId)
	if !found {
		if _, finished := k.GetFinishedAuction(ctx, auctionId); finished {
			return errorsmod.Wrapf(types.ErrBidAfterAuctionEnded, "auction %d", auctionId)
		}
		return errorsmod.Wrapf(types.ErrAuctionNotFound, "auction %d", auctionId)
	}
	if bidder == auction.Creator {
		return errorsmod.Wrap(types.ErrUnauthorized, "creator may not bid on their own auction")
	}
	if auction.HasEnded(types.NewBlockRef(ctx)) {
		return errorsmod.Wrapf(types.ErrBidAfterAuctionEnded, "auction %d", auctionId)
	}
	if !asset.Equal(auction.PriceAsset) {
		return errorsmod.Wrapf(types.ErrBidWrongAsset, "bid in %s, auction settles in %s", asset, auction.PriceAsset)
	}
	minimum := auction.MinimumNextBidAmount()
	if amount.LT(minimum) {
		return errorsmod.Wrapf(types.ErrBidBelowMinimum, "bid %s, minimum %s", amount, minimum)
	}

	if escrow != nil {
		if err := escrow(ctx); err != nil {
			return err
		}
	}

	if auction.BuyoutPrice != nil && amount.GTE(*auction.BuyoutPrice) {
		return k.buyoutAuction(ctx, auction, bidder, amount)
	}

	displaced := auction.ActiveBid
	newBid := types.NewBid(amount, asset, bidder, types.NewBlockRef(ctx))
	auction.ActiveBid = &newBid
	if err := k.SetActiveAuction(ctx, auction); err != nil {
		return err
	}

	oldBidder, oldAmount := "", ""
	if displaced != nil {
		oldBidder, oldAmount = displaced.Bidder, displaced.Amount.String()
		if err := k.sendPriceAsset(ctx, displaced.Asset, displaced.Bidder, displaced.Amount); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(types.NewEventNewActiveBid(auctionId, bidder, amount, oldBidder, oldAmount))
	return nil
}

// buyoutAuction settles an auction in favor of a bid which met the buyout
// price. The stored record keeps the bid it had before the buyout; the
// buyout bid itself never becomes the active bid.
func (k Keeper) buyoutAuction(ctx sdk.Context, auction types.TrackAuction, bidder string, amount sdk.Int) error {
	if err := k.FinishAuction(ctx, auction, types.AuctionStatusResolved); err != nil {
		return err
	}
	if err := k.sendPriceAsset(ctx, auction.PriceAsset, auction.Creator, amount); err != nil {
		return err
	}
	if err := k.transferTrack(ctx, auction, bidder); err != nil {
		return err
	}
	if err := k.refundActiveBid(ctx, auction); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventBuyout(auction.Id, bidder, amount))
	return nil
}

// ResolveAuction settles an expired auction. Anyone may call it: the winner
// receives the track and the creator the winning funds, or the track returns
// to the creator when no bids were placed.
func (m msgServer) ResolveAuction(c context.Context, msg *types.MsgResolveAuction) (*types.MsgResolveAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	auction, found := m.GetActiveAuction(ctx, msg.AuctionId)
	if !found {
		return nil, m.finishedAuctionError(ctx, msg.AuctionId)
	}
	if !auction.HasEnded(types.NewBlockRef(ctx)) {
		return nil, errorsmod.Wrapf(types.ErrAuctionStillInProgress, "auction %d", msg.AuctionId)
	}

	if err := m.FinishAuction(ctx, auction, types.AuctionStatusResolved); err != nil {
		return nil, err
	}

	winner, winningAmount := "", ""
	if auction.ActiveBid != nil {
		bid := auction.ActiveBid
		winner, winningAmount = bid.Bidder, bid.Amount.String()
		if err := m.sendPriceAsset(ctx, bid.Asset, auction.Creator, bid.Amount); err != nil {
			return nil, err
		}
		if err := m.transferTrack(ctx, auction, bid.Bidder); err != nil {
			return nil, err
		}
	} else {
		// no bids, the track goes back to the creator
		if err := m.transferTrack(ctx, auction, auction.Creator); err != nil {
			return nil, err
		}
	}

	ctx.EventManager().EmitEvent(types.NewEventAuctionResolved(msg.AuctionId, winner, winningAmount))
	return &types.MsgResolveAuctionResponse{}, nil
}

// CancelAuction cancels an unexpired auction. Only the creator may cancel:
// the track returns to them and the active bid, if any, is refunded.
func (m msgServer) CancelAuction(c context.Context, msg *types.MsgCancelAuction) (*types.MsgCancelAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	auction, found := m.GetActiveAuction(ctx, msg.AuctionId)
	if !found {
		return nil, m.finishedAuctionError(ctx, msg.AuctionId)
	}
	if msg.Sender != auction.Creator {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "only the creator may cancel an auction")
	}
	if auction.HasEnded(types.NewBlockRef(ctx)) {
		return nil, errorsmod.Wrapf(types.ErrAuctionExpired, "auction %d must be resolved", msg.AuctionId)
	}

	if err := m.FinishAuction(ctx, auction, types.AuctionStatusCanceled); err != nil {
		return nil, err
	}
	if err := m.refundActiveBid(ctx, auction); err != nil {
		return nil, err
	}
	if err := m.transferTrack(ctx, auction, auction.Creator); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(types.NewEventAuctionCanceled(msg.AuctionId, auction.Creator))
	return &types.MsgCancelAuctionResponse{}, nil
}

// finishedAuctionError maps a missing active auction onto the precise error:
// already resolved, canceled, or simply unknown
func (k Keeper) finishedAuctionError(ctx sdk.Context, auctionId uint64) error {
	auction, found := k.GetFinishedAuction(ctx, auctionId)
	if !found {
		return errorsmod.Wrapf(types.ErrAuctionNotFound, "auction %d", auctionId)
	}
	if auction.Status == types.AuctionStatusCanceled {
		return errorsmod.Wrapf(types.ErrAuctionCanceled, "auction %d", auctionId)
	}
	return errorsmod.Wrapf(types.ErrAuctionAlreadyResolved, "auction %d", auctionId)
}
