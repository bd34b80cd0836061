package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

func moduleBalance(input TestInput) sdk.Coin {
	moduleAddr := input.AccountKeeper.GetModuleAddress(types.ModuleName)
	return input.BankKeeper.GetBalance(input.Context, moduleAddr, TestBidDenom)
}

func accountBalance(input TestInput, addr sdk.AccAddress) sdk.Coin {
	return input.BankKeeper.GetBalance(input.Context, addr, TestBidDenom)
}

func newBidMsg(auctionId uint64, bidder sdk.AccAddress, amount int64, funds int64) *types.MsgBid {
	return types.NewMsgBid(
		auctionId,
		bidder.String(),
		sdk.NewInt(amount),
		sdk.NewCoins(sdk.NewInt64Coin(TestBidDenom, funds)),
	)
}

func TestBidValidation(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	creator := AccAddrs[0]
	bidder := AccAddrs[1]
	id := CreateTestAuction(t, input, creator, 100, nil)

	// an admitted bid so the below-minimum case can check the increment rule
	wrapped := sdk.WrapSDKContext(input.Context)
	_, err := srv.Bid(wrapped, newBidMsg(id, AccAddrs[2], 150, 150))
	require.NoError(t, err)

	endedCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 101)

	testCases := []struct {
		name string
		ctx  sdk.Context
		msg  *types.MsgBid
		err  error
	}{
		{
			name: "no funds supplied",
			ctx:  input.Context,
			msg:  types.NewMsgBid(id, bidder.String(), sdk.NewInt(200), sdk.NewCoins()),
			err:  types.ErrNoBidFundsSupplied,
		},
		{
			name: "multiple coins supplied",
			ctx:  input.Context,
			msg: types.NewMsgBid(id, bidder.String(), sdk.NewInt(200), sdk.NewCoins(
				sdk.NewInt64Coin(TestBidDenom, 200),
				sdk.NewInt64Coin("other", 5),
			)),
			err: types.ErrUnnecessaryAssetsForBid,
		},
		{
			name: "funds below declared amount",
			ctx:  input.Context,
			msg:  newBidMsg(id, bidder, 200, 199),
			err:  types.ErrInsufficientBidFunds,
		},
		{
			name: "unknown auction",
			ctx:  input.Context,
			msg:  newBidMsg(999, bidder, 200, 200),
			err:  types.ErrAuctionNotFound,
		},
		{
			name: "creator bidding on own auction",
			ctx:  input.Context,
			msg:  newBidMsg(id, creator, 200, 200),
			err:  types.ErrUnauthorized,
		},
		{
			name: "auction has ended",
			ctx:  endedCtx,
			msg:  newBidMsg(id, bidder, 200, 200),
			err:  types.ErrBidAfterAuctionEnded,
		},
		{
			name: "wrong denom",
			ctx:  input.Context,
			msg: types.NewMsgBid(id, bidder.String(), sdk.NewInt(200), sdk.NewCoins(
				sdk.NewInt64Coin("other", 200),
			)),
			err: types.ErrBidWrongAsset,
		},
		{
			name: "not above the active bid",
			ctx:  input.Context,
			msg:  newBidMsg(id, bidder, 150, 150),
			err:  types.ErrBidBelowMinimum,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := srv.Bid(sdk.WrapSDKContext(tc.ctx), tc.msg)
			require.ErrorIs(t, err, tc.err)
		})
	}

	// the active bid is untouched by all the failures above
	auction, found := k.GetActiveAuction(input.Context, id)
	require.True(t, found)
	require.NotNil(t, auction.ActiveBid)
	require.Equal(t, sdk.NewInt(150), auction.ActiveBid.Amount)
	require.Equal(t, AccAddrs[2].String(), auction.ActiveBid.Bidder)
}

func TestBidBelowMinimumFirstBid(t *testing.T) {
	input := CreateTestEnv(t)
	srv := NewMsgServerImpl(input.AuctionKeeper)

	id := CreateTestAuction(t, input, AccAddrs[0], 100, nil)

	// the first bid may match the minimum exactly
	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, AccAddrs[1], 99, 99))
	require.ErrorIs(t, err, types.ErrBidBelowMinimum)

	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, AccAddrs[1], 100, 100))
	require.NoError(t, err)

	// the next bid must exceed the active one by at least 1
	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, AccAddrs[2], 100, 100))
	require.ErrorIs(t, err, types.ErrBidBelowMinimum)

	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, AccAddrs[2], 101, 101))
	require.NoError(t, err)
}

func TestBidEscrowAndRefund(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	id := CreateTestAuction(t, input, AccAddrs[0], 100, nil)
	first, second := AccAddrs[1], AccAddrs[2]
	firstStart := accountBalance(input, first)

	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, first, 100, 100))
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt(100), moduleBalance(input).Amount)
	require.Equal(t, firstStart.Amount.SubRaw(100), accountBalance(input, first).Amount)

	// a higher bid displaces and refunds the first one
	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, second, 200, 200))
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt(200), moduleBalance(input).Amount)
	require.Equal(t, firstStart.Amount, accountBalance(input, first).Amount)

	auction, found := k.GetActiveAuction(input.Context, id)
	require.True(t, found)
	require.NotNil(t, auction.ActiveBid)
	require.Equal(t, second.String(), auction.ActiveBid.Bidder)
	require.Equal(t, sdk.NewInt(200), auction.ActiveBid.Amount)
}

func TestBidOverpaymentRetained(t *testing.T) {
	input := CreateTestEnv(t)
	srv := NewMsgServerImpl(input.AuctionKeeper)

	id := CreateTestAuction(t, input, AccAddrs[0], 100, nil)
	first := AccAddrs[1]
	firstStart := accountBalance(input, first)

	// 150 escrowed for a declared bid of 100
	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, first, 100, 150))
	require.NoError(t, err)
	require.Equal(t, sdk.NewInt(150), moduleBalance(input).Amount)

	// the refund covers the declared amount only, the excess stays behind
	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, AccAddrs[2], 200, 200))
	require.NoError(t, err)
	require.Equal(t, firstStart.Amount.SubRaw(50), accountBalance(input, first).Amount)
	require.Equal(t, sdk.NewInt(250), moduleBalance(input).Amount)
}

func TestBuyout(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	creator, early, buyer := AccAddrs[0], AccAddrs[1], AccAddrs[2]
	buyout := sdk.NewInt(500)
	id := CreateTestAuction(t, input, creator, 100, &buyout)

	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, early, 100, 100))
	require.NoError(t, err)

	creatorStart := accountBalance(input, creator)
	earlyStart := accountBalance(input, early)

	// a bid meeting the buyout price settles immediately
	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, buyer, 600, 600))
	require.NoError(t, err)

	// the creator is paid the buyout bid, the earlier bid is refunded
	require.Equal(t, creatorStart.Amount.AddRaw(600), accountBalance(input, creator).Amount)
	require.Equal(t, earlyStart.Amount.AddRaw(100), accountBalance(input, early).Amount)

	// the track went to the buyer
	require.Len(t, input.TrackKeeper.Transfers, 1)
	require.Equal(t, buyer, input.TrackKeeper.Transfers[0].Recipient)
	require.Equal(t, "track-1", input.TrackKeeper.Transfers[0].TrackTokenId)

	// the record moves to the finished partition with its pre-buyout bid
	auction, found := k.GetFinishedAuction(input.Context, id)
	require.True(t, found)
	require.Equal(t, types.AuctionStatusResolved, auction.Status)
	require.NotNil(t, auction.ActiveBid)
	require.Equal(t, early.String(), auction.ActiveBid.Bidder)

	// nothing further can happen to it
	_, err = srv.CancelAuction(sdk.WrapSDKContext(input.Context), types.NewMsgCancelAuction(id, creator.String()))
	require.ErrorIs(t, err, types.ErrAuctionAlreadyResolved)
	_, err = srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, early, 700, 700))
	require.ErrorIs(t, err, types.ErrBidAfterAuctionEnded)
}

func TestResolveAuctionWithWinner(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	creator, winner, anyone := AccAddrs[0], AccAddrs[1], AccAddrs[3]
	id := CreateTestAuction(t, input, creator, 100, nil)

	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, winner, 250, 250))
	require.NoError(t, err)

	creatorStart := accountBalance(input, creator)

	// not yet expired, resolution is premature
	_, err = srv.ResolveAuction(sdk.WrapSDKContext(input.Context), types.NewMsgResolveAuction(id, anyone.String()))
	require.ErrorIs(t, err, types.ErrAuctionStillInProgress)

	// the final block of the duration still counts as in progress
	boundaryCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 100)
	_, err = srv.ResolveAuction(sdk.WrapSDKContext(boundaryCtx), types.NewMsgResolveAuction(id, anyone.String()))
	require.ErrorIs(t, err, types.ErrAuctionStillInProgress)

	// one block later anyone may resolve
	endedCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 101)
	_, err = srv.ResolveAuction(sdk.WrapSDKContext(endedCtx), types.NewMsgResolveAuction(id, anyone.String()))
	require.NoError(t, err)

	require.Equal(t, creatorStart.Amount.AddRaw(250), accountBalance(input, creator).Amount)
	require.Equal(t, sdk.ZeroInt(), moduleBalance(input).Amount)
	require.Len(t, input.TrackKeeper.Transfers, 1)
	require.Equal(t, winner, input.TrackKeeper.Transfers[0].Recipient)

	auction, found := k.GetFinishedAuction(input.Context, id)
	require.True(t, found)
	require.Equal(t, types.AuctionStatusResolved, auction.Status)

	// a second resolve reports the terminal state
	_, err = srv.ResolveAuction(sdk.WrapSDKContext(endedCtx), types.NewMsgResolveAuction(id, anyone.String()))
	require.ErrorIs(t, err, types.ErrAuctionAlreadyResolved)
}

func TestResolveAuctionWithoutBids(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	creator := AccAddrs[0]
	id := CreateTestAuction(t, input, creator, 100, nil)

	endedCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 101)
	_, err := srv.ResolveAuction(sdk.WrapSDKContext(endedCtx), types.NewMsgResolveAuction(id, AccAddrs[1].String()))
	require.NoError(t, err)

	// the track returns to the creator, no funds move
	require.Len(t, input.TrackKeeper.Transfers, 1)
	require.Equal(t, creator, input.TrackKeeper.Transfers[0].Recipient)
	require.Equal(t, sdk.ZeroInt(), moduleBalance(input).Amount)

	auction, found := k.GetFinishedAuction(input.Context, id)
	require.True(t, found)
	require.Equal(t, types.AuctionStatusResolved, auction.Status)
	require.Nil(t, auction.ActiveBid)
}

func TestResolveUnknownAuction(t *testing.T) {
	input := CreateTestEnv(t)
	srv := NewMsgServerImpl(input.AuctionKeeper)

	_, err := srv.ResolveAuction(sdk.WrapSDKContext(input.Context), types.NewMsgResolveAuction(42, AccAddrs[0].String()))
	require.ErrorIs(t, err, types.ErrAuctionNotFound)
}

func TestCancelAuction(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	creator, bidder := AccAddrs[0], AccAddrs[1]
	id := CreateTestAuction(t, input, creator, 100, nil)

	_, err := srv.Bid(sdk.WrapSDKContext(input.Context), newBidMsg(id, bidder, 150, 150))
	require.NoError(t, err)
	bidderAfterBid := accountBalance(input, bidder)

	// only the creator may cancel
	_, err = srv.CancelAuction(sdk.WrapSDKContext(input.Context), types.NewMsgCancelAuction(id, bidder.String()))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.CancelAuction(sdk.WrapSDKContext(input.Context), types.NewMsgCancelAuction(id, creator.String()))
	require.NoError(t, err)

	// the bid is refunded and the track returns to the creator
	require.Equal(t, bidderAfterBid.Amount.AddRaw(150), accountBalance(input, bidder).Amount)
	require.Equal(t, sdk.ZeroInt(), moduleBalance(input).Amount)
	require.Len(t, input.TrackKeeper.Transfers, 1)
	require.Equal(t, creator, input.TrackKeeper.Transfers[0].Recipient)

	auction, found := k.GetFinishedAuction(input.Context, id)
	require.True(t, found)
	require.Equal(t, types.AuctionStatusCanceled, auction.Status)

	// a canceled auction reports its own state on later operations
	_, err = srv.CancelAuction(sdk.WrapSDKContext(input.Context), types.NewMsgCancelAuction(id, creator.String()))
	require.ErrorIs(t, err, types.ErrAuctionCanceled)
	endedCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 101)
	_, err = srv.ResolveAuction(sdk.WrapSDKContext(endedCtx), types.NewMsgResolveAuction(id, creator.String()))
	require.ErrorIs(t, err, types.ErrAuctionCanceled)
}

func TestCancelExpiredAuction(t *testing.T) {
	input := CreateTestEnv(t)
	srv := NewMsgServerImpl(input.AuctionKeeper)

	creator := AccAddrs[0]
	id := CreateTestAuction(t, input, creator, 100, nil)

	endedCtx := input.Context.WithBlockHeight(input.Context.BlockHeight() + 101)
	_, err := srv.CancelAuction(sdk.WrapSDKContext(endedCtx), types.NewMsgCancelAuction(id, creator.String()))
	require.ErrorIs(t, err, types.ErrAuctionExpired)
}
