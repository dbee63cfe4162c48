package config

import (
	"testing"

	"blackjacktable/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLACKJACK_MAX_SPLITS", "3")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(4, cfg.DecksCount)
	a.Equal(3, cfg.MaxSplits)
	a.Equal(250, cfg.StartingChips)

	// ensure we aren't using a pointer
	cfg.MaxSplits = -1
	cfg = Instance()
	a.Equal(3, cfg.MaxSplits)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(2, cfg.DecksCount)
	a.Equal(1, cfg.MaxSplits)
	a.Equal(7, cfg.MaxPlayers)
	a.Equal(10000, cfg.DealerBank)
	a.EqualValues(0, cfg.Seed)
}
