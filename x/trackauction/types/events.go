package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// When a track deposit opens a new auction
	EventTypeAuctionCreated          = "auction_created"
	AttributeKeyCreatedAuctionId     = "auction_id"
	AttributeKeyCreatedCreator       = "creator"
	AttributeKeyCreatedTrackTokenId  = "track_token_id"
	AttributeKeyCreatedMinimumAmount = "minimum_bid_amount"

	// When a bid displaces the previous active bid (or becomes the first)
	EventTypeNewActiveBid       = "new_active_bid"
	AttributeKeyBidAuctionId    = "auction_id"
	AttributeKeyBidBidder       = "bidder"
	AttributeKeyBidAmount       = "bid_amount"
	AttributeKeyBidOldBidder    = "old_bidder"
	AttributeKeyBidOldBidAmount = "old_bid_amount"

	// When a bid meets the buyout price and ends the auction immediately
	EventTypeBuyout             = "auction_buyout"
	AttributeKeyBuyoutAuctionId = "auction_id"
	AttributeKeyBuyoutBidder    = "bidder"
	AttributeKeyBuyoutAmount    = "bid_amount"

	// When an expired auction is settled
	EventTypeAuctionResolved      = "auction_resolved"
	AttributeKeyResolvedAuctionId = "auction_id"
	AttributeKeyResolvedWinner    = "winner"
	AttributeKeyResolvedAmount    = "winning_amount"

	// When the creator cancels an auction before expiry
	EventTypeAuctionCanceled      = "auction_canceled"
	AttributeKeyCanceledAuctionId = "auction_id"
	AttributeKeyCanceledCreator   = "creator"
)

// NewEventAuctionCreated creates an event to mark the opening of an auction
func NewEventAuctionCreated(auctionId uint64, creator string, trackTokenId string, minimumBidAmount sdk.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeAuctionCreated,
		sdk.NewAttribute(AttributeKeyCreatedAuctionId, fmt.Sprint(auctionId)),
		sdk.NewAttribute(AttributeKeyCreatedCreator, creator),
		sdk.NewAttribute(AttributeKeyCreatedTrackTokenId, trackTokenId),
		sdk.NewAttribute(AttributeKeyCreatedMinimumAmount, minimumBidAmount.String()),
	)
}

// NewEventNewActiveBid creates an event to mark the admission of a bid.
// oldBidder is empty for the first bid on an auction.
func NewEventNewActiveBid(auctionId uint64, bidder string, bidAmount sdk.Int, oldBidder string, oldBidAmount string) sdk.Event {
	return sdk.NewEvent(
		EventTypeNewActiveBid,
		sdk.NewAttribute(AttributeKeyBidAuctionId, fmt.Sprint(auctionId)),
		sdk.NewAttribute(AttributeKeyBidBidder, bidder),
		sdk.NewAttribute(AttributeKeyBidAmount, bidAmount.String()),
		sdk.NewAttribute(AttributeKeyBidOldBidder, oldBidder),
		sdk.NewAttribute(AttributeKeyBidOldBidAmount, oldBidAmount),
	)
}

// NewEventBuyout creates an event to mark a bid which met the buyout price
func NewEventBuyout(auctionId uint64, bidder string, bidAmount sdk.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeBuyout,
		sdk.NewAttribute(AttributeKeyBuyoutAuctionId, fmt.Sprint(auctionId)),
		sdk.NewAttribute(AttributeKeyBuyoutBidder, bidder),
		sdk.NewAttribute(AttributeKeyBuyoutAmount, bidAmount.String()),
	)
}

// NewEventAuctionResolved creates an event to mark the settlement of an
// expired auction. winner and winningAmount are empty for a failed auction
// with no bids.
func NewEventAuctionResolved(auctionId uint64, winner string, winningAmount string) sdk.Event {
	return sdk.NewEvent(
		EventTypeAuctionResolved,
		sdk.NewAttribute(AttributeKeyResolvedAuctionId, fmt.Sprint(auctionId)),
		sdk.NewAttribute(AttributeKeyResolvedWinner, winner),
		sdk.NewAttribute(AttributeKeyResolvedAmount, winningAmount),
	)
}

// NewEventAuctionCanceled creates an event to mark the cancellation of an
// auction by its creator
func NewEventAuctionCanceled(auctionId uint64, creator string) sdk.Event {
	return sdk.NewEvent(
		EventTypeAuctionCanceled,
		sdk.NewAttribute(AttributeKeyCanceledAuctionId, fmt.Sprint(auctionId)),
		sdk.NewAttribute(AttributeKeyCanceledCreator, creator),
	)
}
