package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState is the module's exported state: the singleton config, the id
// counter, and both auction partitions
type GenesisState struct {
	Config           *Config        `json:"config,omitempty"`
	NextAuctionId    uint64         `json:"next_auction_id"`
	ActiveAuctions   []TrackAuction `json:"active_auctions"`
	FinishedAuctions []TrackAuction `json:"finished_auctions"`
}

// DefaultGenesisState returns an empty genesis with no config set; a chain
// must supply a config before the module can open auctions
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Config:           nil,
		NextAuctionId:    0,
		ActiveAuctions:   []TrackAuction{},
		FinishedAuctions: []TrackAuction{},
	}
}

// ValidateBasic validates genesis state
func (s GenesisState) ValidateBasic() error {
	if s.Config != nil {
		if err := s.Config.ValidateBasic(); err != nil {
			return err
		}
	}
	seen := make(map[uint64]bool)
	for _, a := range s.ActiveAuctions {
		if err := a.ValidateBasic(); err != nil {
			return err
		}
		if a.Status != AuctionStatusActive {
			return errorsmod.Wrapf(ErrInvalidAuction, "auction %d in the active partition has status %s", a.Id, a.Status)
		}
		if a.Id >= s.NextAuctionId {
			return errorsmod.Wrapf(ErrInvalidAuction, "auction %d is not below the next auction id %d", a.Id, s.NextAuctionId)
		}
		if seen[a.Id] {
			return errorsmod.Wrapf(ErrInvalidAuction, "duplicate auction id %d", a.Id)
		}
		seen[a.Id] = true
	}
	for _, a := range s.FinishedAuctions {
		if err := a.ValidateBasic(); err != nil {
			return err
		}
		if !a.Status.IsTerminal() {
			return errorsmod.Wrapf(ErrInvalidAuction, "auction %d in the finished partition has status %s", a.Id, a.Status)
		}
		if a.Id >= s.NextAuctionId {
			return errorsmod.Wrapf(ErrInvalidAuction, "auction %d is not below the next auction id %d", a.Id, s.NextAuctionId)
		}
		if seen[a.Id] {
			return errorsmod.Wrapf(ErrInvalidAuction, "duplicate auction id %d", a.Id)
		}
		seen[a.Id] = true
	}
	return nil
}
