package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

func TestQueryConfig(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	c := sdk.WrapSDKContext(input.Context)

	res, err := k.Config(c, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, TestConfig, res.Config)
}

func TestQueryAuction(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	c := sdk.WrapSDKContext(input.Context)

	id := CreateTestAuction(t, input, AccAddrs[0], 100, nil)

	res, err := k.Auction(c, &types.QueryAuctionRequest{AuctionId: id})
	require.NoError(t, err)
	require.Equal(t, id, res.Auction.Id)

	// finished auctions stay queryable under the same id
	auction, found := k.GetActiveAuction(input.Context, id)
	require.True(t, found)
	require.NoError(t, k.FinishAuction(input.Context, auction, types.AuctionStatusCanceled))

	res, err = k.Auction(c, &types.QueryAuctionRequest{AuctionId: id})
	require.NoError(t, err)
	require.Equal(t, types.AuctionStatusCanceled, res.Auction.Status)

	_, err = k.Auction(c, &types.QueryAuctionRequest{AuctionId: 999})
	require.Error(t, err)
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestQueryAuctions(t *testing.T) {
	input := CreateTestEnv(t)
	k := input.AuctionKeeper
	c := sdk.WrapSDKContext(input.Context)

	for i := 0; i < 3; i++ {
		CreateTestAuction(t, input, AccAddrs[0], 100, nil)
	}
	done := CreateTestAuction(t, input, AccAddrs[1], 100, nil)
	auction, found := k.GetActiveAuction(input.Context, done)
	require.True(t, found)
	require.NoError(t, k.FinishAuction(input.Context, auction, types.AuctionStatusResolved))

	res, err := k.Auctions(c, &types.QueryAuctionsRequest{Active: true, StartAfter: nil, Limit: 0})
	require.NoError(t, err)
	require.Len(t, res.Auctions, 3)

	res, err = k.Auctions(c, &types.QueryAuctionsRequest{Active: false, StartAfter: nil, Limit: 0})
	require.NoError(t, err)
	require.Len(t, res.Auctions, 1)
	require.Equal(t, done, res.Auctions[0].Id)

	after := uint64(0)
	res, err = k.Auctions(c, &types.QueryAuctionsRequest{Active: true, StartAfter: &after, Limit: 1})
	require.NoError(t, err)
	require.Len(t, res.Auctions, 1)
	require.Equal(t, uint64(1), res.Auctions[0].Id)
}
