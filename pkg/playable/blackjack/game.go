package blackjack

import (
	"errors"
	"fmt"
	"time"

	"blackjacktable/pkg/deck"
	"blackjacktable/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game adapts a Table to the playable contract so a host can drive the
// engine with ticks and per-player action payloads.
type Game struct {
	table      *Table
	idToPlayer map[int64]*Player
	logChan    chan []*playable.LogMessage
	logger     logrus.FieldLogger

	startingChips map[int64]int
}

// NewGame returns a new game of blackjack with one seated player per ID
func NewGame(logger logrus.FieldLogger, playerIDs []int64, options Options) (*Game, error) {
	if len(playerIDs) < 1 {
		return nil, errors.New("game requires at least one player")
	}

	table := NewTable(logger, options)

	g := &Game{
		table:         table,
		idToPlayer:    make(map[int64]*Player, len(playerIDs)),
		logChan:       make(chan []*playable.LogMessage, 256),
		logger:        logger,
		startingChips: make(map[int64]int, len(playerIDs)),
	}

	table.SetNotifier(NotifierFunc(g.onEvent))

	for _, pid := range playerIDs {
		if _, ok := g.idToPlayer[pid]; ok {
			return nil, errors.New("duplicate players detected")
		}

		player := NewPlayer(pid, fmt.Sprintf("Player %d", pid), table.Options().StartingChips)
		if err := table.AddPlayer(player); err != nil {
			return nil, err
		}

		g.idToPlayer[pid] = player
		g.startingChips[pid] = player.Chips
	}

	return g, nil
}

// Table returns the underlying table for hosts that need the fine-grained
// query and mutator surface
func (g *Game) Table() *Table {
	return g.table
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Blackjack"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "blackjack"
}

// LogChan should return a channel that a game will send log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Interval is how long we should wait before updating the game state
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick advances the table by at most one move
func (g *Game) Tick() (bool, error) {
	if g.table.IsGameEnded() {
		return false, nil
	}

	if err := g.table.Update(); err != nil {
		var actionErr *PlayerActionError
		if errors.As(err, &actionErr) {
			g.logger.WithError(err).Warn("player move rejected")
			g.sendLogMessages(playable.SimpleLogMessageSlice(0, "%s", actionErr.Error()))
			return true, nil
		}

		return false, err
	}

	return true, nil
}

// Action performs an action for the player
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, false, errors.New("player not found with that ID")
	}

	log := g.logger.WithField("playerID", playerID)

	switch message.Subject {
	case "bet":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok || amount <= 0 {
			return nil, false, errors.New("a positive bet amount is required")
		}

		if g.table.IsGameStarted() {
			return nil, false, errors.New("bets are closed once cards are dealt")
		}

		if err := player.PlaceBet(player.GetCurrentHand(), amount); err != nil {
			return nil, false, err
		}

		log.WithField("amount", amount).Debug("bet placed")
		g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "%s bet %d", player.Name, amount))
		return playable.OK(message.Context), true, nil

	case "reset-bet":
		if g.table.IsGameStarted() {
			return nil, false, errors.New("bets are closed once cards are dealt")
		}

		if err := player.ResetBet(player.GetCurrentHand()); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	move, err := MoveFromString(message.Subject)
	if err != nil {
		return nil, false, err
	}

	if !g.isMoveAvailable(player, move) {
		return nil, false, fmt.Errorf("you cannot perform the move: %s", move.String())
	}

	player.SetMove(move)
	log.WithField("move", move.String()).Debug("move set")
	return playable.OK(message.Context), true, nil
}

// isMoveAvailable returns true if the move is in the player's legal set
func (g *Game) isMoveAvailable(player *Player, move Move) bool {
	for _, m := range g.availableMoves(player) {
		if m == move {
			return true
		}
	}

	return false
}

// availableMoves returns the moves the player may legally queue right now
func (g *Game) availableMoves(player *Player) []Move {
	if player.GetCurrentHand().State != StateMoving {
		return nil
	}

	moves := []Move{MoveHit, MoveStand}
	if player.CanDouble() {
		moves = append(moves, MoveDouble)
	}

	if player.CanSplit(g.table.Options().MaxSplits) {
		moves = append(moves, MoveSplit)
	}

	if player.CanGetInsurance(g.table.Dealer()) {
		moves = append(moves, MoveInsurance)
	}

	if player.CanEvenMoney(g.table.Dealer()) {
		moves = append(moves, MoveEvenMoney)
	}

	return moves
}

type dealerState struct {
	Name     string     `json:"name"`
	UpCard   *deck.Card `json:"upCard"`
	Hand     *Hand      `json:"hand,omitempty"`
	HoleDown bool       `json:"holeDown"`
}

type gameState struct {
	Players        []*Player    `json:"players"`
	Dealer         *dealerState `json:"dealer"`
	GamesCount     int          `json:"gamesCount"`
	CardsLeft      int          `json:"cardsLeft"`
	Started        bool         `json:"started"`
	Ended          bool         `json:"ended"`
	AvailableMoves []Move       `json:"availableMoves"`
}

// GetPlayerState returns the current state of the game for the player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, errors.New("player not found with that ID")
	}

	dealer := g.table.Dealer()
	ds := &dealerState{
		Name:   dealer.Name,
		UpCard: dealer.UpCard(),
	}

	// the hole card stays hidden until the players are done acting
	if dealer.Hand.State == StateWait && g.table.IsGameStarted() {
		ds.HoleDown = true
	} else {
		ds.Hand = dealer.Hand
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Key(),
		Data: &gameState{
			Players:        g.table.Players(),
			Dealer:         ds,
			GamesCount:     g.table.GamesCount(),
			CardsLeft:      g.table.CardsLeft(),
			Started:        g.table.IsGameStarted(),
			Ended:          g.table.IsGameEnded(),
			AvailableMoves: g.availableMoves(player),
		},
	}, nil
}

// GetEndOfGameDetails returns the details after a game is over
// If the game is still in progress, nil will be returned and the second param will be false
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !g.table.IsGameEnded() {
		return nil, false
	}

	adjustments := make(map[int64]int, len(g.idToPlayer))
	for pid, player := range g.idToPlayer {
		adjustments[pid] = player.Chips - g.startingChips[pid]
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                nil,
	}, true
}

func (g *Game) onEvent(event Event) {
	playerID := int64(0)
	name := ""
	if event.Player != nil {
		playerID = event.Player.ID
		name = event.Player.Name
	}

	switch event.Topic {
	case TopicPlayerJoined:
		g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "%s joined the table", name))
	case TopicPlayerKicked:
		g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "%s was kicked from the table", name))
	case TopicPlayerQuit:
		g.sendLogMessages(playable.SimpleLogMessageSlice(playerID, "%s left the table", name))
	case TopicGameStarted:
		g.sendLogMessages(playable.SimpleLogMessageSlice(0, "cards are dealt"))
	case TopicGameEnded:
		g.sendLogMessages(playable.SimpleLogMessageSlice(0, "the round is settled"))
	case TopicGameReset:
		g.sendLogMessages(playable.SimpleLogMessageSlice(0, "the table is reset"))
	}
}

func (g *Game) sendLogMessages(messages []*playable.LogMessage) {
	select {
	case g.logChan <- messages:
	default:
		g.logger.Warn("log channel is full; dropping messages")
	}
}
