package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceAssetEqual(t *testing.T) {
	native := NewNativePriceAsset("stake")
	token := NewTokenPriceAsset("groove-token")

	require.True(t, native.Equal(NewNativePriceAsset("stake")))
	require.False(t, native.Equal(NewNativePriceAsset("atom")))
	require.True(t, token.Equal(NewTokenPriceAsset("groove-token")))
	require.False(t, token.Equal(NewTokenPriceAsset("other-token")))

	// variants never compare equal to each other
	require.False(t, native.Equal(token))
	require.False(t, token.Equal(native))
}

func TestPriceAssetValidate(t *testing.T) {
	require.NoError(t, NewNativePriceAsset("stake").Validate())
	require.Error(t, NewNativePriceAsset("").Validate())
	require.Error(t, NewNativePriceAsset("1bad!denom").Validate())

	require.NoError(t, NewTokenPriceAsset("groove-token").Validate())
	require.Error(t, NewTokenPriceAsset("").Validate())
}

func TestDurationValidate(t *testing.T) {
	require.NoError(t, NewHeightDuration(1).Validate())
	require.ErrorIs(t, NewHeightDuration(0).Validate(), ErrInvalidAuctionDuration)

	require.NoError(t, NewTimeDuration(1).Validate())
	require.ErrorIs(t, NewTimeDuration(0).Validate(), ErrInvalidAuctionDuration)
}
