package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CreateAuctionPayload is the instruction attached to an NFT deposit: the
// sender transfers a track to the module and this payload describes the
// auction to open for it
type CreateAuctionPayload struct {
	Duration         Duration `json:"duration"`
	MinimumBidAmount sdk.Int  `json:"minimum_bid_amount"`
	BuyoutPrice      *sdk.Int `json:"buyout_price,omitempty"`
}

// NewCreateAuctionPayload constructs a create-auction instruction
func NewCreateAuctionPayload(duration Duration, minimumBidAmount sdk.Int, buyoutPrice *sdk.Int) CreateAuctionPayload {
	return CreateAuctionPayload{
		Duration:         duration,
		MinimumBidAmount: minimumBidAmount,
		BuyoutPrice:      buyoutPrice,
	}
}

// ValidateBasic performs stateless checks on the payload
func (p CreateAuctionPayload) ValidateBasic() error {
	if p.Duration == nil {
		return errorsmod.Wrap(ErrInvalidAuction, "duration must be set")
	}
	if err := p.Duration.Validate(); err != nil {
		return err
	}
	if p.MinimumBidAmount.IsNil() || p.MinimumBidAmount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAuction, "minimum bid amount must not be negative")
	}
	if p.BuyoutPrice != nil && !p.BuyoutPrice.IsPositive() {
		return errorsmod.Wrap(ErrInvalidAuction, "buyout price must be positive")
	}
	return nil
}

// BidPayload is the instruction attached to a fungible-token deposit: the
// sender transfers tokens to the module and this payload names the auction
// they are bidding on
type BidPayload struct {
	AuctionId uint64  `json:"auction_id"`
	BidAmount sdk.Int `json:"bid_amount"`
}

// NewBidPayload constructs a token-bid instruction
func NewBidPayload(auctionId uint64, bidAmount sdk.Int) BidPayload {
	return BidPayload{
		AuctionId: auctionId,
		BidAmount: bidAmount,
	}
}

// ValidateBasic performs stateless checks on the payload
func (p BidPayload) ValidateBasic() error {
	if p.BidAmount.IsNil() || !p.BidAmount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidBid, "bid amount must be positive")
	}
	return nil
}
