package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// AllInvariants collects any defined invariants below
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ValidActiveAuctionsInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the
// escrowed funds of every active native-asset bid. Equality is not required:
// bidders may attach more funds than the declared bid amount and the excess
// stays with the module.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (message string, invalidState bool) {
		moduleAccount := k.accountKeeper.GetModuleAccount(ctx, types.ModuleName).GetAddress()

		escrowed := EscrowedNativeBidFunds(ctx, k)
		for _, coin := range escrowed {
			balance := k.bankKeeper.GetBalance(ctx, moduleAccount, coin.Denom)
			if balance.Amount.LT(coin.Amount) {
				return fmt.Sprintf("module holds %s but active bids escrowed %s", balance, coin), true
			}
		}
		return "", false
	}
}

// EscrowedNativeBidFunds tallies the active bids settled in native coins,
// grouped by denom. Token-settled bids are held by the token registry and
// not reflected in the module's bank balance.
func EscrowedNativeBidFunds(ctx sdk.Context, k Keeper) sdk.Coins {
	escrowed := sdk.NewCoins()
	k.IterateActiveAuctions(ctx, func(auction types.TrackAuction) (stop bool) {
		if auction.ActiveBid == nil {
			return false
		}
		if native, ok := auction.ActiveBid.Asset.(types.NativePriceAsset); ok {
			escrowed = escrowed.Add(sdk.NewCoin(native.Denom, auction.ActiveBid.Amount))
		}
		return false
	})
	return escrowed
}

// ValidActiveAuctionsInvariant checks that every auction in the active
// partition is internally consistent and below the id counter
func ValidActiveAuctionsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (message string, invalidState bool) {
		counter := k.GetAuctionIdCounter(ctx)
		message = ""
		k.IterateActiveAuctions(ctx, func(auction types.TrackAuction) (stop bool) {
			if err := auction.ValidateBasic(); err != nil {
				message = fmt.Sprintf("invalid active auction %d: %v", auction.Id, err)
				return true
			}
			if auction.Id >= counter {
				message = fmt.Sprintf("active auction %d is not below the id counter %d", auction.Id, counter)
				return true
			}
			return false
		})
		return message, message != ""
	}
}
