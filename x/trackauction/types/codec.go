package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers concrete types on the Amino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterInterface((*PriceAsset)(nil), nil)
	cdc.RegisterConcrete(NativePriceAsset{}, "trackauction/NativePriceAsset", nil)
	cdc.RegisterConcrete(TokenPriceAsset{}, "trackauction/TokenPriceAsset", nil)

	cdc.RegisterInterface((*Duration)(nil), nil)
	cdc.RegisterConcrete(HeightDuration{}, "trackauction/HeightDuration", nil)
	cdc.RegisterConcrete(TimeDuration{}, "trackauction/TimeDuration", nil)

	// nolint: exhaustruct
	cdc.RegisterConcrete(&MsgBid{}, "trackauction/MsgBid", nil)
	// nolint: exhaustruct
	cdc.RegisterConcrete(&MsgResolveAuction{}, "trackauction/MsgResolveAuction", nil)
	// nolint: exhaustruct
	cdc.RegisterConcrete(&MsgCancelAuction{}, "trackauction/MsgCancelAuction", nil)
}

// RegisterInterfaces registers the module's messages with the interface
// registry so they can be routed by the baseapp msg service router
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	// nolint: exhaustruct
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgBid{},
		&MsgResolveAuction{},
		&MsgCancelAuction{},
	)
}

// ModuleCdc is the codec used to serialize both state and legacy query
// responses for the module
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
}
