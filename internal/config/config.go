package config

import (
	"os"

	"blackjacktable/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides table defaults for the blackjack engine
type Config struct {
	loaded        bool
	DecksCount    int   `yaml:"decksCount" envconfig:"decks_count"`
	MaxSplits     int   `yaml:"maxSplits" envconfig:"max_splits"`
	MaxPlayers    int   `yaml:"maxPlayers" envconfig:"max_players"`
	DealerBank    int   `yaml:"dealerBank" envconfig:"dealer_bank"`
	StartingChips int   `yaml:"startingChips" envconfig:"starting_chips"`
	Seed          int64 `yaml:"seed" envconfig:"seed"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment variables
// still apply.
func Load() error {
	config = Config{
		DecksCount:    2,
		MaxSplits:     1,
		MaxPlayers:    7,
		DealerBank:    10000,
		StartingChips: 500,
	}

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("blackjack", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
