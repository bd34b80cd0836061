package types

import (
	"context"
)

// Legacy querier routes
const (
	QueryConfigRoute   = "config"
	QueryAuctionRoute  = "auction"
	QueryAuctionsRoute = "auctions"
)

const (
	// DefaultAuctionsLimit is the page size used when a listing request
	// leaves the limit unset
	DefaultAuctionsLimit = 20
	// MaxAuctionsLimit caps the page size of listing requests
	MaxAuctionsLimit = 100
)

// QueryServer is the read-only surface of the module, implemented by the
// keeper
type QueryServer interface {
	Config(ctx context.Context, req *QueryConfigRequest) (*QueryConfigResponse, error)
	Auction(ctx context.Context, req *QueryAuctionRequest) (*QueryAuctionResponse, error)
	Auctions(ctx context.Context, req *QueryAuctionsRequest) (*QueryAuctionsResponse, error)
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

// QueryAuctionRequest looks up a single auction by id in either partition
type QueryAuctionRequest struct {
	AuctionId uint64 `json:"auction_id"`
}

type QueryAuctionResponse struct {
	Auction TrackAuction `json:"auction"`
}

// QueryAuctionsRequest lists one auction partition in ascending id order.
// StartAfter is an exclusive cursor; a nil cursor starts from the lowest id.
// A zero Limit uses DefaultAuctionsLimit, larger limits are clamped to
// MaxAuctionsLimit.
type QueryAuctionsRequest struct {
	Active     bool    `json:"active"`
	StartAfter *uint64 `json:"start_after,omitempty"`
	Limit      uint64  `json:"limit"`
}

type QueryAuctionsResponse struct {
	Auctions []TrackAuction `json:"auctions"`
}
