package keeper

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	input := CreateTestEnv(t)
	ctx := input.Context
	k := input.AuctionKeeper
	srv := NewMsgServerImpl(k)

	// build some state: one active auction with a bid, one canceled
	active := CreateTestAuction(t, input, AccAddrs[0], 100, nil)
	_, err := srv.Bid(sdk.WrapSDKContext(ctx), newBidMsg(active, AccAddrs[1], 150, 150))
	require.NoError(t, err)

	canceled := CreateTestAuction(t, input, AccAddrs[2], 200, nil)
	_, err = srv.CancelAuction(sdk.WrapSDKContext(ctx), types.NewMsgCancelAuction(canceled, AccAddrs[2].String()))
	require.NoError(t, err)

	exported := ExportGenesis(ctx, k)
	require.NotNil(t, exported.Config)
	require.Equal(t, TestConfig, *exported.Config)
	require.Equal(t, uint64(2), exported.NextAuctionId)
	require.Len(t, exported.ActiveAuctions, 1)
	require.Len(t, exported.FinishedAuctions, 1)
	require.NoError(t, exported.ValidateBasic())

	// replay the export into a fresh environment
	fresh := CreateTestEnv(t)
	InitGenesis(fresh.Context, fresh.AuctionKeeper, exported)

	replayed := ExportGenesis(fresh.Context, fresh.AuctionKeeper)
	require.Equal(t, exported, replayed)

	// the replayed state behaves like the original: the canceled auction is
	// terminal and the active one still accepts bids
	freshSrv := NewMsgServerImpl(fresh.AuctionKeeper)
	_, err = freshSrv.CancelAuction(sdk.WrapSDKContext(fresh.Context), types.NewMsgCancelAuction(canceled, AccAddrs[2].String()))
	require.ErrorIs(t, err, types.ErrAuctionCanceled)
	_, err = freshSrv.Bid(sdk.WrapSDKContext(fresh.Context), newBidMsg(active, AccAddrs[3], 300, 300))
	require.NoError(t, err)
}

func TestGenesisValidation(t *testing.T) {
	base := types.NewTrackAuction(
		0,
		types.BlockRef{Height: 1, Time: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)},
		types.NewHeightDuration(10),
		AccAddrs[0].String(),
		TestNftContract,
		"track-1",
		sdk.NewInt(100),
		types.NewNativePriceAsset(TestBidDenom),
		nil,
	)

	t.Run("terminal auction in the active partition", func(t *testing.T) {
		bad := base
		bad.Status = types.AuctionStatusResolved
		gs := types.GenesisState{
			Config:           nil,
			NextAuctionId:    1,
			ActiveAuctions:   []types.TrackAuction{bad},
			FinishedAuctions: []types.TrackAuction{},
		}
		require.Error(t, gs.ValidateBasic())
	})

	t.Run("active auction in the finished partition", func(t *testing.T) {
		gs := types.GenesisState{
			Config:           nil,
			NextAuctionId:    1,
			ActiveAuctions:   []types.TrackAuction{},
			FinishedAuctions: []types.TrackAuction{base},
		}
		require.Error(t, gs.ValidateBasic())
	})

	t.Run("id at or above the counter", func(t *testing.T) {
		gs := types.GenesisState{
			Config:           nil,
			NextAuctionId:    0,
			ActiveAuctions:   []types.TrackAuction{base},
			FinishedAuctions: []types.TrackAuction{},
		}
		require.Error(t, gs.ValidateBasic())
	})

	t.Run("duplicate ids across partitions", func(t *testing.T) {
		done := base
		done.Status = types.AuctionStatusCanceled
		gs := types.GenesisState{
			Config:           nil,
			NextAuctionId:    1,
			ActiveAuctions:   []types.TrackAuction{base},
			FinishedAuctions: []types.TrackAuction{done},
		}
		require.Error(t, gs.ValidateBasic())
	})

	t.Run("valid state", func(t *testing.T) {
		config := TestConfig
		gs := types.GenesisState{
			Config:           &config,
			NextAuctionId:    1,
			ActiveAuctions:   []types.TrackAuction{base},
			FinishedAuctions: []types.TrackAuction{},
		}
		require.NoError(t, gs.ValidateBasic())
	})
}
