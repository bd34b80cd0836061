package types

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AuctionStatus tracks the lifecycle state of an auction. Active auctions
// accept bids; Resolved and Canceled are terminal.
type AuctionStatus int32

const (
	AuctionStatusActive   AuctionStatus = 0
	AuctionStatusResolved AuctionStatus = 1
	AuctionStatusCanceled AuctionStatus = 2
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionStatusActive:
		return "active"
	case AuctionStatusResolved:
		return "resolved"
	case AuctionStatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further lifecycle transitions are possible
func (s AuctionStatus) IsTerminal() bool {
	return s == AuctionStatusResolved || s == AuctionStatusCanceled
}

// BlockRef is a snapshot of the block a record was written at, used to
// compute auction expiry against both duration variants
type BlockRef struct {
	Height uint64    `json:"height"`
	Time   time.Time `json:"time"`
}

// NewBlockRef captures the current block of the given context
func NewBlockRef(ctx sdk.Context) BlockRef {
	return BlockRef{
		Height: uint64(ctx.BlockHeight()),
		Time:   ctx.BlockTime(),
	}
}

// Bid is the single currently-winning bid on an auction. It only ever exists
// as the ActiveBid of a TrackAuction; a displaced bid is refunded and
// overwritten, never mutated in place.
type Bid struct {
	Amount   sdk.Int    `json:"amount"`
	Asset    PriceAsset `json:"asset"`
	Bidder   string     `json:"bidder"`
	PostedAt BlockRef   `json:"posted_at"`
}

// NewBid constructs a bid posted at the given block
func NewBid(amount sdk.Int, asset PriceAsset, bidder string, postedAt BlockRef) Bid {
	return Bid{
		Amount:   amount,
		Asset:    asset,
		Bidder:   bidder,
		PostedAt: postedAt,
	}
}

// ValidateBasic performs stateless checks on a bid
func (b Bid) ValidateBasic() error {
	if b.Amount.IsNil() || !b.Amount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidBid, "bid amount must be positive")
	}
	if b.Asset == nil {
		return errorsmod.Wrap(ErrInvalidBid, "bid asset must be set")
	}
	if err := b.Asset.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidBid, "invalid bid asset: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(b.Bidder); err != nil {
		return errorsmod.Wrapf(ErrInvalidBid, "invalid bidder: %v", err)
	}
	return nil
}

// TrackAuction is the auction record for a single track NFT. The module is
// the sole owner and mutator of these records; the escrowed NFT and the
// active bid's funds are under the auction's control until a terminal
// transition reassigns them.
type TrackAuction struct {
	Id        uint64        `json:"id"`
	Status    AuctionStatus `json:"status"`
	CreatedAt BlockRef      `json:"created_at"`
	Duration  Duration      `json:"duration"`
	// Creator submitted the auction and receives the winning funds, or the
	// NFT back if the auction fails
	Creator     string `json:"creator"`
	NftContract string `json:"nft_contract"`
	// TrackTokenId identifies the NFT token representing the track
	TrackTokenId     string     `json:"track_token_id"`
	MinimumBidAmount sdk.Int    `json:"minimum_bid_amount"`
	PriceAsset       PriceAsset `json:"price_asset"`
	ActiveBid        *Bid       `json:"active_bid,omitempty"`
	// BuyoutPrice, if set, ends the auction in favor of any bid matching or
	// exceeding it
	BuyoutPrice *sdk.Int `json:"buyout_price,omitempty"`
}

// NewTrackAuction creates a fresh Active auction with no bid
func NewTrackAuction(
	id uint64,
	createdAt BlockRef,
	duration Duration,
	creator string,
	nftContract string,
	trackTokenId string,
	minimumBidAmount sdk.Int,
	priceAsset PriceAsset,
	buyoutPrice *sdk.Int,
) TrackAuction {
	return TrackAuction{
		Id:               id,
		Status:           AuctionStatusActive,
		CreatedAt:        createdAt,
		Duration:         duration,
		Creator:          creator,
		NftContract:      nftContract,
		TrackTokenId:     trackTokenId,
		MinimumBidAmount: minimumBidAmount,
		PriceAsset:       priceAsset,
		ActiveBid:        nil,
		BuyoutPrice:      buyoutPrice,
	}
}

// MinimumNextBidAmount calculates the lowest amount the next bid may carry:
// one more than the active bid, or the configured minimum for the first bid
func (a TrackAuction) MinimumNextBidAmount() sdk.Int {
	if a.ActiveBid == nil {
		return a.MinimumBidAmount
	}
	return a.ActiveBid.Amount.Add(sdk.OneInt())
}

// HasEnded reports whether the auction duration has elapsed as of the given
// block. The comparison is strict on both variants: an auction created at
// height H with a duration of N blocks still accepts bids at H+N.
func (a TrackAuction) HasEnded(current BlockRef) bool {
	switch d := a.Duration.(type) {
	case HeightDuration:
		return current.Height > a.CreatedAt.Height+d.Blocks
	case TimeDuration:
		return current.Time.After(a.CreatedAt.Time.Add(time.Duration(d.Seconds) * time.Second))
	default:
		// unreachable, the Duration variant set is closed
		return false
	}
}

// ValidateBasic performs stateless checks on an auction record
func (a TrackAuction) ValidateBasic() error {
	if a.Duration == nil {
		return errorsmod.Wrap(ErrInvalidAuction, "duration must be set")
	}
	if err := a.Duration.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidAuction, "invalid duration: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(a.Creator); err != nil {
		return errorsmod.Wrapf(ErrInvalidAuction, "invalid creator: %v", err)
	}
	if a.NftContract == "" {
		return errorsmod.Wrap(ErrInvalidAuction, "empty NFT contract")
	}
	if a.TrackTokenId == "" {
		return errorsmod.Wrap(ErrInvalidAuction, "empty track token id")
	}
	if a.MinimumBidAmount.IsNil() || a.MinimumBidAmount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidAuction, "minimum bid amount must not be negative")
	}
	if a.PriceAsset == nil {
		return errorsmod.Wrap(ErrInvalidAuction, "price asset must be set")
	}
	if err := a.PriceAsset.Validate(); err != nil {
		return errorsmod.Wrapf(ErrInvalidAuction, "invalid price asset: %v", err)
	}
	if a.BuyoutPrice != nil && !a.BuyoutPrice.IsPositive() {
		return errorsmod.Wrap(ErrInvalidAuction, "buyout price must be positive")
	}
	if a.ActiveBid != nil {
		if err := a.ActiveBid.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(ErrInvalidAuction, "invalid active bid: %v", err)
		}
		if !a.ActiveBid.Asset.Equal(a.PriceAsset) {
			return errorsmod.Wrap(ErrInvalidAuction, "active bid asset differs from the auction price asset")
		}
		if a.ActiveBid.Amount.LT(a.MinimumBidAmount) {
			return errorsmod.Wrap(ErrInvalidAuction, "active bid below the minimum bid amount")
		}
	}
	return nil
}
