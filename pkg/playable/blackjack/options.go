package blackjack

import (
	"blackjacktable/internal/config"
	"blackjacktable/internal/rng"
)

// Options contains options for creating a new blackjack table
type Options struct {
	// DecksCount is how many 52-card packs make up the shoe
	DecksCount int

	// MaxSplits is how many times a player may split per round
	MaxSplits int

	// MaxPlayers caps the number of seats
	MaxPlayers int

	// ReshuffleThreshold rebuilds and reshuffles the shoe when fewer cards
	// remain. Zero means a third of the shoe.
	ReshuffleThreshold int

	// DealerBank is the house's starting chips
	DealerBank int

	// StartingChips is how many chips a newly seated player receives
	StartingChips int

	// Seed drives every shuffle. Zero picks a random seed.
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		DecksCount:    2,
		MaxSplits:     1,
		MaxPlayers:    7,
		DealerBank:    10000,
		StartingChips: 500,
	}
}

// OptionsFromConfig returns options built from the loaded configuration
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		DecksCount:    cfg.DecksCount,
		MaxSplits:     cfg.MaxSplits,
		MaxPlayers:    cfg.MaxPlayers,
		DealerBank:    cfg.DealerBank,
		StartingChips: cfg.StartingChips,
		Seed:          cfg.Seed,
	}
}

// withDefaults fills in unset values
func (o Options) withDefaults() Options {
	if o.DecksCount <= 0 {
		o.DecksCount = 2
	}

	if o.MaxPlayers <= 0 {
		o.MaxPlayers = 7
	}

	if o.ReshuffleThreshold <= 0 {
		o.ReshuffleThreshold = o.DecksCount * 52 / 3
	}

	if o.DealerBank <= 0 {
		o.DealerBank = 10000
	}

	if o.StartingChips <= 0 {
		o.StartingChips = 500
	}

	if o.Seed == 0 {
		o.Seed = rng.RandomSeed()
	}

	return o
}
