package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// Duration determines how long an auction accepts bids, measured either in
// blocks or in seconds. Like PriceAsset this is a closed two-variant type.
type Duration interface {
	isDuration()

	Validate() error
	String() string
}

// HeightDuration ends an auction once the chain has advanced the given
// number of blocks past the creation height
type HeightDuration struct {
	Blocks uint64 `json:"blocks"`
}

// TimeDuration ends an auction once the block time has advanced the given
// number of seconds past the creation time
type TimeDuration struct {
	Seconds uint64 `json:"seconds"`
}

// nolint: exhaustruct
var (
	_ Duration = HeightDuration{}
	_ Duration = TimeDuration{}
)

// NewHeightDuration creates a block-count Duration
func NewHeightDuration(blocks uint64) HeightDuration {
	return HeightDuration{Blocks: blocks}
}

// NewTimeDuration creates a seconds-based Duration
func NewTimeDuration(seconds uint64) TimeDuration {
	return TimeDuration{Seconds: seconds}
}

func (HeightDuration) isDuration() {}

func (d HeightDuration) Validate() error {
	if d.Blocks == 0 {
		return errorsmod.Wrap(ErrInvalidAuctionDuration, "zero block duration")
	}
	return nil
}

func (d HeightDuration) String() string {
	return fmt.Sprintf("%d blocks", d.Blocks)
}

func (TimeDuration) isDuration() {}

func (d TimeDuration) Validate() error {
	if d.Seconds == 0 {
		return errorsmod.Wrap(ErrInvalidAuctionDuration, "zero time duration")
	}
	return nil
}

func (d TimeDuration) String() string {
	return fmt.Sprintf("%d seconds", d.Seconds)
}
