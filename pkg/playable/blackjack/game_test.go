package blackjack

import (
	"testing"

	"blackjacktable/pkg/deck"
	"blackjacktable/pkg/playable"
	"blackjacktable/pkg/snapshot"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), nil, DefaultOptions())
	a.EqualError(err, "game requires at least one player")
	a.Nil(game)

	game, err = NewGame(logrus.StandardLogger(), []int64{1, 2, 1}, DefaultOptions())
	a.EqualError(err, "duplicate players detected")
	a.Nil(game)

	game, err = NewGame(logrus.StandardLogger(), []int64{1, 2}, DefaultOptions())
	a.NoError(err)
	a.NotNil(game)
	a.Equal("Blackjack", game.Name())
	a.Equal("blackjack", game.Key())
	a.Len(game.Table().Players(), 2)
	a.Equal(500, game.Table().Players()[0].Chips)
}

func payload(subject string, data playable.AdditionalData) *playable.PayloadIn {
	return &playable.PayloadIn{
		Subject:        subject,
		AdditionalData: data,
	}
}

func TestGame_Action_bet(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1}, DefaultOptions())
	a.NoError(err)

	_, _, err = game.Action(99, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.EqualError(err, "player not found with that ID")

	_, _, err = game.Action(1, payload("bet", nil))
	a.EqualError(err, "a positive bet amount is required")

	res, update, err := game.Action(1, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.NoError(err)
	a.True(update)
	a.Equal("OK", res.Value)
	a.Equal(400, game.Table().Players()[0].Chips)

	_, _, err = game.Action(1, payload("reset-bet", nil))
	a.NoError(err)
	a.Equal(500, game.Table().Players()[0].Chips)
}

func TestGame_fullRound(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1, 2}, DefaultOptions())
	a.NoError(err)

	game.Table().deck.Cards = deck.CardsFromString("10c,10d,9c,7d,13h,10s")

	_, _, err = game.Action(1, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.NoError(err)
	_, _, err = game.Action(2, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.NoError(err)

	details, over := game.GetEndOfGameDetails()
	a.False(over)
	a.Nil(details)

	// first tick deals the opening hands
	didUpdate, err := game.Tick()
	a.NoError(err)
	a.True(didUpdate)
	a.True(game.Table().IsGameStarted())

	// bets are closed mid-round
	_, _, err = game.Action(1, payload("bet", playable.AdditionalData{"amount": float64(50)}))
	a.EqualError(err, "bets are closed once cards are dealt")

	// player 1 holds a pair of tens and may hit, stand, double, or split
	moves := game.availableMoves(game.Table().Players()[0])
	a.Contains(moves, MoveHit)
	a.Contains(moves, MoveStand)
	a.Contains(moves, MoveDouble)
	a.Contains(moves, MoveSplit)

	// player 2 is not acting yet
	_, _, err = game.Action(2, payload("stand", nil))
	a.EqualError(err, "you cannot perform the move: stand")

	_, _, err = game.Action(1, payload("stand", nil))
	a.NoError(err)
	_, err = game.Tick()
	a.NoError(err)

	_, _, err = game.Action(2, payload("stand", nil))
	a.NoError(err)
	_, err = game.Tick()
	a.NoError(err)

	// dealer stands on twenty and the round settles
	_, err = game.Tick()
	a.NoError(err)
	a.True(game.Table().IsGameEnded())

	details, over = game.GetEndOfGameDetails()
	a.True(over)
	a.Equal(map[int64]int{
		1: 0,    // push on twenty
		2: -100, // sixteen loses
	}, details.BalanceAdjustments)

	// a tick on an ended game is a no-op; the host must reset
	didUpdate, err = game.Tick()
	a.NoError(err)
	a.False(didUpdate)
}

func TestGame_Action_invalidMove(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1}, DefaultOptions())
	a.NoError(err)

	_, _, err = game.Action(1, payload("fold", nil))
	a.EqualError(err, "invalid move: fold")
}

func TestGame_GetPlayerState_hidesHoleCard(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1}, DefaultOptions())
	a.NoError(err)

	game.Table().deck.Cards = deck.CardsFromString("10c,9d,13h,10s")
	_, _, err = game.Action(1, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.NoError(err)
	_, err = game.Tick()
	a.NoError(err)

	res, err := game.GetPlayerState(1)
	a.NoError(err)
	a.Equal("game", res.Key)
	a.Equal("blackjack", res.Value)

	state, ok := res.Data.(*gameState)
	a.True(ok)
	a.True(state.Started)
	a.True(state.Dealer.HoleDown)
	a.Nil(state.Dealer.Hand)
	a.True(state.Dealer.UpCard.Equal(deck.CardFromString("13h")))

	// once the round settles the hole card is revealed
	_, _, err = game.Action(1, payload("stand", nil))
	a.NoError(err)
	for i := 0; i < 10 && !game.Table().IsGameEnded(); i++ {
		_, err = game.Tick()
		a.NoError(err)
	}

	res, err = game.GetPlayerState(1)
	a.NoError(err)
	state = res.Data.(*gameState)
	a.True(state.Ended)
	a.False(state.Dealer.HoleDown)
	a.Equal("13h,10s", state.Dealer.Hand.String())

	_, err = game.GetPlayerState(99)
	a.EqualError(err, "player not found with that ID")
}

func TestGame_stateSnapshot(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1}, DefaultOptions())
	a.NoError(err)

	game.Table().deck.Cards = deck.CardsFromString("10c,9d,13h,10s")
	_, _, err = game.Action(1, payload("bet", playable.AdditionalData{"amount": float64(100)}))
	a.NoError(err)
	_, err = game.Tick()
	a.NoError(err)
	_, _, err = game.Action(1, payload("stand", nil))
	a.NoError(err)
	for i := 0; i < 10 && !game.Table().IsGameEnded(); i++ {
		_, err = game.Tick()
		a.NoError(err)
	}

	res, err := game.GetPlayerState(1)
	a.NoError(err)
	snapshot.Validate(t, "game-state-settled", res.Data)
}

func TestGame_LogChan(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), []int64{1}, DefaultOptions())
	a.NoError(err)

	// seating the player produced a join message
	select {
	case messages := <-game.LogChan():
		a.Len(messages, 1)
		a.Contains(messages[0].Message, "joined the table")
	default:
		a.Fail("expected a log message")
	}
}
