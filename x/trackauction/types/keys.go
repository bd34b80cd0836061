package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "trackauction"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// KeyConfig is the key under which the singleton Config is stored
	KeyConfig = "config"

	// KeyNextAuctionId is the key holding the auction identifier counter,
	// incremented on every auction creation and never reused
	KeyNextAuctionId = "next-auction-id"

	// KeyPrefixActiveAuction is the prefix for the active auction partition
	KeyPrefixActiveAuction = "active-auction-"

	// KeyPrefixFinishedAuction is the prefix for the finished (resolved or
	// canceled) auction partition
	KeyPrefixFinishedAuction = "finished-auction-"
)

// AuctionKey returns the partition-local key for an auction id. Keys are
// big-endian so that prefix iteration yields ascending identifier order,
// which the paginated list queries rely on.
func AuctionKey(id uint64) []byte {
	return sdk.Uint64ToBigEndian(id)
}

// AuctionIdFromKey recovers the auction id from a partition-local key
func AuctionIdFromKey(key []byte) uint64 {
	return sdk.BigEndianToUint64(key)
}
