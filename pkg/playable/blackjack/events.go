package blackjack

import (
	"time"

	"github.com/google/uuid"
)

// Topic identifies a table lifecycle event
type Topic string

// Topic constants
const (
	TopicPlayerJoined Topic = "player-joined"
	TopicPlayerKicked Topic = "player-kicked"
	TopicPlayerQuit   Topic = "player-quit"
	TopicGameReset    Topic = "game-reset"
	TopicGameStarted  Topic = "game-started"
	TopicGameEnded    Topic = "game-ended"
)

// Event is the payload delivered to the table's notifier.
// Player is nil for game-wide events.
type Event struct {
	UUID   string    `json:"uuid"`
	Topic  Topic     `json:"topic"`
	Player *Player   `json:"player,omitempty"`
	Time   time.Time `json:"time"`
}

// Notifier receives table lifecycle events. The table only ever calls
// Notify; fan-out to multiple subscribers is the host's concern.
type Notifier interface {
	Notify(event Event)
}

// NotifierFunc adapts a func to the Notifier interface
type NotifierFunc func(event Event)

// Notify calls the func
func (f NotifierFunc) Notify(event Event) {
	f(event)
}

func newEvent(topic Topic, player *Player) Event {
	return Event{
		UUID:   uuid.New().String(),
		Topic:  topic,
		Player: player,
		Time:   time.Now(),
	}
}
