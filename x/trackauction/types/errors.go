package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/trackauction module sentinel errors
var (
	ErrNftContractNotWhitelisted = errorsmod.Register(ModuleName, 1, "NFT contract is not whitelisted for auctions")
	ErrInvalidAuctionDuration    = errorsmod.Register(ModuleName, 2, "auction duration has to be greater than zero")
	ErrAuctionNotFound           = errorsmod.Register(ModuleName, 3, "no auction with given id was found")
	ErrUnauthorized              = errorsmod.Register(ModuleName, 4, "unauthorized")
	ErrBidWrongAsset             = errorsmod.Register(ModuleName, 5, "attempting to bid using the wrong asset")
	ErrInsufficientBidFunds      = errorsmod.Register(ModuleName, 6, "supplied funds do not cover the attempted bid")
	ErrBidBelowMinimum           = errorsmod.Register(ModuleName, 7, "bid is lower than the minimum required")
	ErrNoBidFundsSupplied        = errorsmod.Register(ModuleName, 8, "attempting to bid with no funds")
	ErrUnnecessaryAssetsForBid   = errorsmod.Register(ModuleName, 9, "trying to send assets not necessary for the bid")
	ErrBidAfterAuctionEnded      = errorsmod.Register(ModuleName, 10, "cannot place a bid after the auction has ended")
	ErrAuctionStillInProgress    = errorsmod.Register(ModuleName, 11, "auction is still in progress, cannot perform that action yet")
	ErrAuctionAlreadyResolved    = errorsmod.Register(ModuleName, 12, "auction has already been resolved")
	ErrAuctionCanceled           = errorsmod.Register(ModuleName, 13, "auction has been canceled")
	ErrAuctionExpired            = errorsmod.Register(ModuleName, 14, "auction has expired")
	ErrInvalidAuction            = errorsmod.Register(ModuleName, 15, "invalid auction")
	ErrInvalidBid                = errorsmod.Register(ModuleName, 16, "invalid bid")
	ErrInvalidConfig             = errorsmod.Register(ModuleName, 17, "invalid config")
	ErrConfigNotSet              = errorsmod.Register(ModuleName, 18, "module config has not been set")
)
