package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// nolint: exhaustruct
var _ types.QueryServer = Keeper{}

// Config queries the module configuration
func (k Keeper) Config(c context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(c)
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	return &types.QueryConfigResponse{Config: config}, nil
}

// Auction queries a single auction by id, in either partition
func (k Keeper) Auction(c context.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(c)
	auction, found := k.GetAuction(ctx, req.AuctionId)
	if !found {
		return nil, status.Errorf(codes.NotFound, "auction %d", req.AuctionId)
	}
	return &types.QueryAuctionResponse{Auction: auction}, nil
}

// Auctions queries one page of an auction partition in ascending id order
func (k Keeper) Auctions(c context.Context, req *types.QueryAuctionsRequest) (*types.QueryAuctionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	ctx := sdk.UnwrapSDKContext(c)
	var auctions []types.TrackAuction
	if req.Active {
		auctions = k.GetActiveAuctions(ctx, req.StartAfter, req.Limit)
	} else {
		auctions = k.GetFinishedAuctions(ctx, req.StartAfter, req.Limit)
	}
	return &types.QueryAuctionsResponse{Auctions: auctions}, nil
}
