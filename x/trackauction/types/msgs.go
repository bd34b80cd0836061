package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// nolint: exhaustruct
var (
	_ sdk.Msg = &MsgBid{}
	_ sdk.Msg = &MsgResolveAuction{}
	_ sdk.Msg = &MsgCancelAuction{}
)

// MsgServer is the transactional surface of the module, implemented by the
// keeper's msg server
type MsgServer interface {
	// Bid places a native-asset bid, escrowing the attached funds
	Bid(ctx context.Context, msg *MsgBid) (*MsgBidResponse, error)
	// ResolveAuction settles an expired auction; callable by anyone
	ResolveAuction(ctx context.Context, msg *MsgResolveAuction) (*MsgResolveAuctionResponse, error)
	// CancelAuction cancels an unexpired auction; callable by its creator
	CancelAuction(ctx context.Context, msg *MsgCancelAuction) (*MsgCancelAuctionResponse, error)
}

// MsgBid places a bid on an auction using the native settlement asset.
// BidFunds are the coins escrowed from the bidder; they must consist of
// exactly one coin covering BidAmount.
type MsgBid struct {
	AuctionId uint64    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	BidAmount sdk.Int   `json:"bid_amount"`
	BidFunds  sdk.Coins `json:"bid_funds"`
}

type MsgBidResponse struct{}

// NewMsgBid returns a new MsgBid
func NewMsgBid(auctionId uint64, bidder string, bidAmount sdk.Int, bidFunds sdk.Coins) *MsgBid {
	return &MsgBid{
		AuctionId: auctionId,
		Bidder:    bidder,
		BidAmount: bidAmount,
		BidFunds:  bidFunds,
	}
}

// Route should return the name of the module
func (msg *MsgBid) Route() string { return RouterKey }

// Type should return the action
func (msg *MsgBid) Type() string { return "bid" }

// ValidateBasic performs stateless checks
func (msg *MsgBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, msg.Bidder)
	}
	if msg.BidAmount.IsNil() || !msg.BidAmount.IsPositive() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "bid amount must be positive")
	}
	if err := msg.BidFunds.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, msg.BidFunds.String())
	}
	return nil
}

// GetSignBytes encodes the message for signing
func (msg *MsgBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg *MsgBid) GetSigners() []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}

// MsgResolveAuction settles an expired auction, sending the NFT to the
// winning bidder and the bid funds to the creator, or the NFT back to the
// creator when no bids were placed
type MsgResolveAuction struct {
	AuctionId uint64 `json:"auction_id"`
	Sender    string `json:"sender"`
}

type MsgResolveAuctionResponse struct{}

// NewMsgResolveAuction returns a new MsgResolveAuction
func NewMsgResolveAuction(auctionId uint64, sender string) *MsgResolveAuction {
	return &MsgResolveAuction{
		AuctionId: auctionId,
		Sender:    sender,
	}
}

// Route should return the name of the module
func (msg *MsgResolveAuction) Route() string { return RouterKey }

// Type should return the action
func (msg *MsgResolveAuction) Type() string { return "resolve_auction" }

// ValidateBasic performs stateless checks
func (msg *MsgResolveAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	return nil
}

// GetSignBytes encodes the message for signing
func (msg *MsgResolveAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg *MsgResolveAuction) GetSigners() []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}

// MsgCancelAuction cancels an unexpired auction, returning the NFT to the
// creator and refunding the active bid if one exists
type MsgCancelAuction struct {
	AuctionId uint64 `json:"auction_id"`
	Sender    string `json:"sender"`
}

type MsgCancelAuctionResponse struct{}

// NewMsgCancelAuction returns a new MsgCancelAuction
func NewMsgCancelAuction(auctionId uint64, sender string) *MsgCancelAuction {
	return &MsgCancelAuction{
		AuctionId: auctionId,
		Sender:    sender,
	}
}

// Route should return the name of the module
func (msg *MsgCancelAuction) Route() string { return RouterKey }

// Type should return the action
func (msg *MsgCancelAuction) Type() string { return "cancel_auction" }

// ValidateBasic performs stateless checks
func (msg *MsgCancelAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, msg.Sender)
	}
	return nil
}

// GetSignBytes encodes the message for signing
func (msg *MsgCancelAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners defines whose signature is required
func (msg *MsgCancelAuction) GetSigners() []sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{acc}
}

// proto.Message stubs so the messages satisfy sdk.Msg; the module routes
// messages through the legacy amino handler

func (msg *MsgBid) XXX_MessageName() string            { return "trackauction.MsgBid" }
func (msg *MsgResolveAuction) XXX_MessageName() string { return "trackauction.MsgResolveAuction" }
func (msg *MsgCancelAuction) XXX_MessageName() string  { return "trackauction.MsgCancelAuction" }

func (msg *MsgBid) Reset()          { *msg = MsgBid{} }
func (msg *MsgBid) String() string  { return fmt.Sprintf("MsgBid<%d %s %s>", msg.AuctionId, msg.Bidder, msg.BidAmount) }
func (msg *MsgBid) ProtoMessage()   {}
func (msg *MsgBidResponse) Reset()  { *msg = MsgBidResponse{} }
func (msg *MsgBidResponse) String() string { return "MsgBidResponse<>" }
func (msg *MsgBidResponse) ProtoMessage()  {}

func (msg *MsgResolveAuction) Reset() { *msg = MsgResolveAuction{} }
func (msg *MsgResolveAuction) String() string {
	return fmt.Sprintf("MsgResolveAuction<%d %s>", msg.AuctionId, msg.Sender)
}
func (msg *MsgResolveAuction) ProtoMessage()          {}
func (msg *MsgResolveAuctionResponse) Reset()         { *msg = MsgResolveAuctionResponse{} }
func (msg *MsgResolveAuctionResponse) String() string { return "MsgResolveAuctionResponse<>" }
func (msg *MsgResolveAuctionResponse) ProtoMessage()  {}

func (msg *MsgCancelAuction) Reset() { *msg = MsgCancelAuction{} }
func (msg *MsgCancelAuction) String() string {
	return fmt.Sprintf("MsgCancelAuction<%d %s>", msg.AuctionId, msg.Sender)
}
func (msg *MsgCancelAuction) ProtoMessage()          {}
func (msg *MsgCancelAuctionResponse) Reset()         { *msg = MsgCancelAuctionResponse{} }
func (msg *MsgCancelAuctionResponse) String() string { return "MsgCancelAuctionResponse<>" }
func (msg *MsgCancelAuctionResponse) ProtoMessage()  {}
