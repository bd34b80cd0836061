package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// The codec must carry the closed duration and price asset variants through
// both binary state encoding and the JSON genesis encoding
func TestCodecPreservesVariants(t *testing.T) {
	buyout := sdk.NewInt(900)
	auction := NewTrackAuction(
		3,
		testCreated,
		NewTimeDuration(120),
		testCreator,
		"track-registry",
		"track-7",
		sdk.NewInt(50),
		NewTokenPriceAsset("groove-token"),
		&buyout,
	)
	bid := NewBid(sdk.NewInt(60), NewTokenPriceAsset("groove-token"), testBidder, testCreated)
	auction.ActiveBid = &bid

	bz, err := ModuleCdc.Marshal(auction)
	require.NoError(t, err)
	var decoded TrackAuction
	require.NoError(t, ModuleCdc.Unmarshal(bz, &decoded))
	require.Equal(t, auction, decoded)
	require.IsType(t, TimeDuration{}, decoded.Duration)
	require.IsType(t, TokenPriceAsset{}, decoded.PriceAsset)

	js, err := ModuleCdc.MarshalJSON(auction)
	require.NoError(t, err)
	var fromJSON TrackAuction
	require.NoError(t, ModuleCdc.UnmarshalJSON(js, &fromJSON))
	require.Equal(t, auction, fromJSON)
}
