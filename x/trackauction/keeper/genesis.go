package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// InitGenesis starts a chain from the given genesis state
func InitGenesis(ctx sdk.Context, k Keeper, data types.GenesisState) {
	if err := data.ValidateBasic(); err != nil {
		panic(err)
	}
	if data.Config != nil {
		if err := k.SetConfig(ctx, *data.Config); err != nil {
			panic(err)
		}
	}
	k.setAuctionIdCounter(ctx, data.NextAuctionId)
	for _, auction := range data.ActiveAuctions {
		if err := k.SetActiveAuction(ctx, auction); err != nil {
			panic(err)
		}
	}
	for _, auction := range data.FinishedAuctions {
		if err := k.setFinishedAuction(ctx, auction); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis exports the module state so it can be used to start a new
// chain
func ExportGenesis(ctx sdk.Context, k Keeper) types.GenesisState {
	var config *types.Config
	if c, err := k.GetConfig(ctx); err == nil {
		config = &c
	}
	return types.GenesisState{
		Config:           config,
		NextAuctionId:    k.GetAuctionIdCounter(ctx),
		ActiveAuctions:   k.GetAllActiveAuctions(ctx),
		FinishedAuctions: k.GetAllFinishedAuctions(ctx),
	}
}
