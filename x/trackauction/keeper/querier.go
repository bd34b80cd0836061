package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// NewQuerier creates the legacy amino query handler for the module
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QueryConfigRoute:
			return queryConfig(ctx, k, legacyQuerierCdc)
		case types.QueryAuctionRoute:
			return queryAuction(ctx, req, k, legacyQuerierCdc)
		case types.QueryAuctionsRoute:
			return queryAuctions(ctx, req, k, legacyQuerierCdc)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unknown query path %s", path[0])
		}
	}
}

func queryConfig(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, types.QueryConfigResponse{Config: config})
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryAuction(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryAuctionRequest
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	auction, found := k.GetAuction(ctx, params.AuctionId)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrAuctionNotFound, "auction %d", params.AuctionId)
	}
	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, types.QueryAuctionResponse{Auction: auction})
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}

func queryAuctions(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryAuctionsRequest
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	var auctions []types.TrackAuction
	if params.Active {
		auctions = k.GetActiveAuctions(ctx, params.StartAfter, params.Limit)
	} else {
		auctions = k.GetFinishedAuctions(ctx, params.StartAfter, params.Limit)
	}
	res, err := codec.MarshalJSONIndent(legacyQuerierCdc, types.QueryAuctionsResponse{Auctions: auctions})
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	return res, nil
}
