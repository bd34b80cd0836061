package keeper

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

// GetAuctionIdCounter returns the id the next created auction will receive
func (k Keeper) GetAuctionIdCounter(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(types.KeyNextAuctionId))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setAuctionIdCounter(ctx sdk.Context, next uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set([]byte(types.KeyNextAuctionId), sdk.Uint64ToBigEndian(next))
}

// AllocateAuctionId hands out the next auction id and advances the counter.
// Ids start at 0 and are never reused, even for canceled auctions.
func (k Keeper) AllocateAuctionId(ctx sdk.Context) uint64 {
	id := k.GetAuctionIdCounter(ctx)
	k.setAuctionIdCounter(ctx, id+1)
	return id
}

func (k Keeper) activeStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.KeyPrefixActiveAuction))
}

func (k Keeper) finishedStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(k.storeKey), []byte(types.KeyPrefixFinishedAuction))
}

// SetActiveAuction writes an auction into the active partition
func (k Keeper) SetActiveAuction(ctx sdk.Context, auction types.TrackAuction) error {
	if err := auction.ValidateBasic(); err != nil {
		return err
	}
	if auction.Status != types.AuctionStatusActive {
		return errorsmod.Wrapf(types.ErrInvalidAuction, "auction %d is %s, not active", auction.Id, auction.Status)
	}
	k.activeStore(ctx).Set(types.AuctionKey(auction.Id), k.cdc.MustMarshal(auction))
	return nil
}

// GetActiveAuction fetches an auction from the active partition
func (k Keeper) GetActiveAuction(ctx sdk.Context, id uint64) (types.TrackAuction, bool) {
	bz := k.activeStore(ctx).Get(types.AuctionKey(id))
	if bz == nil {
		// nolint: exhaustruct
		return types.TrackAuction{}, false
	}
	var auction types.TrackAuction
	k.cdc.MustUnmarshal(bz, &auction)
	return auction, true
}

func (k Keeper) deleteActiveAuction(ctx sdk.Context, id uint64) {
	k.activeStore(ctx).Delete(types.AuctionKey(id))
}

func (k Keeper) setFinishedAuction(ctx sdk.Context, auction types.TrackAuction) error {
	if !auction.Status.IsTerminal() {
		return errorsmod.Wrapf(types.ErrInvalidAuction, "auction %d is %s, not terminal", auction.Id, auction.Status)
	}
	k.finishedStore(ctx).Set(types.AuctionKey(auction.Id), k.cdc.MustMarshal(auction))
	return nil
}

// GetFinishedAuction fetches an auction from the finished partition
func (k Keeper) GetFinishedAuction(ctx sdk.Context, id uint64) (types.TrackAuction, bool) {
	bz := k.finishedStore(ctx).Get(types.AuctionKey(id))
	if bz == nil {
		// nolint: exhaustruct
		return types.TrackAuction{}, false
	}
	var auction types.TrackAuction
	k.cdc.MustUnmarshal(bz, &auction)
	return auction, true
}

// GetAuction looks an auction up by id in either partition
func (k Keeper) GetAuction(ctx sdk.Context, id uint64) (types.TrackAuction, bool) {
	if auction, found := k.GetActiveAuction(ctx, id); found {
		return auction, true
	}
	return k.GetFinishedAuction(ctx, id)
}

// FinishAuction moves an auction from the active partition into the finished
// one under the given terminal status. The record itself, including any
// active bid, is preserved as-is.
func (k Keeper) FinishAuction(ctx sdk.Context, auction types.TrackAuction, status types.AuctionStatus) error {
	if !status.IsTerminal() {
		return errorsmod.Wrapf(types.ErrInvalidAuction, "%s is not a terminal status", status)
	}
	if _, found := k.GetActiveAuction(ctx, auction.Id); !found {
		return errorsmod.Wrapf(types.ErrAuctionNotFound, "auction %d is not active", auction.Id)
	}
	auction.Status = status
	k.deleteActiveAuction(ctx, auction.Id)
	return k.setFinishedAuction(ctx, auction)
}

// IterateActiveAuctions executes the given callback over every active
// auction in ascending id order, stopping early if the callback returns true
func (k Keeper) IterateActiveAuctions(ctx sdk.Context, cb func(auction types.TrackAuction) (stop bool)) {
	iterator := k.activeStore(ctx).Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var auction types.TrackAuction
		k.cdc.MustUnmarshal(iterator.Value(), &auction)
		if cb(auction) {
			break
		}
	}
}

// GetActiveAuctions returns one page of the active partition in ascending id
// order. See GetAuctionsPage for cursor and limit semantics.
func (k Keeper) GetActiveAuctions(ctx sdk.Context, startAfter *uint64, limit uint64) []types.TrackAuction {
	return k.getAuctionsPage(k.activeStore(ctx), startAfter, limit)
}

// GetFinishedAuctions returns one page of the finished partition in ascending
// id order. See GetAuctionsPage for cursor and limit semantics.
func (k Keeper) GetFinishedAuctions(ctx sdk.Context, startAfter *uint64, limit uint64) []types.TrackAuction {
	return k.getAuctionsPage(k.finishedStore(ctx), startAfter, limit)
}

// getAuctionsPage pages through a partition with an exclusive startAfter
// cursor. A zero limit falls back to the default page size and oversized
// limits are clamped.
func (k Keeper) getAuctionsPage(store prefix.Store, startAfter *uint64, limit uint64) []types.TrackAuction {
	if limit == 0 {
		limit = types.DefaultAuctionsLimit
	} else if limit > types.MaxAuctionsLimit {
		limit = types.MaxAuctionsLimit
	}

	var start []byte
	if startAfter != nil {
		if *startAfter == math.MaxUint64 {
			return []types.TrackAuction{}
		}
		start = types.AuctionKey(*startAfter + 1)
	}

	iterator := store.Iterator(start, nil)
	defer iterator.Close()

	auctions := []types.TrackAuction{}
	for ; iterator.Valid() && uint64(len(auctions)) < limit; iterator.Next() {
		var auction types.TrackAuction
		k.cdc.MustUnmarshal(iterator.Value(), &auction)
		auctions = append(auctions, auction)
	}
	return auctions
}

// GetAllActiveAuctions returns the whole active partition, used for genesis
// export and the module invariant
func (k Keeper) GetAllActiveAuctions(ctx sdk.Context) []types.TrackAuction {
	auctions := []types.TrackAuction{}
	k.IterateActiveAuctions(ctx, func(auction types.TrackAuction) bool {
		auctions = append(auctions, auction)
		return false
	})
	return auctions
}

// GetAllFinishedAuctions returns the whole finished partition, used for
// genesis export
func (k Keeper) GetAllFinishedAuctions(ctx sdk.Context) []types.TrackAuction {
	iterator := k.finishedStore(ctx).Iterator(nil, nil)
	defer iterator.Close()

	auctions := []types.TrackAuction{}
	for ; iterator.Valid(); iterator.Next() {
		var auction types.TrackAuction
		k.cdc.MustUnmarshal(iterator.Value(), &auction)
		auctions = append(auctions, auction)
	}
	return auctions
}
