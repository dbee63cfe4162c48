package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"blackjacktable/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a dealing shoe built from one or more standard 52-card packs
type Deck struct {
	Cards []*Card `json:"cards"`
	packs int
}

// New returns a new deck built from the given number of packs.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(packs int) *Deck {
	if packs < 1 {
		panic(fmt.Sprintf("packs must be >= 1, got %d", packs))
	}

	d := &Deck{packs: packs}
	d.Rebuild()
	return d
}

// Rebuild discards whatever is left in the shoe and repopulates it with
// every card from every pack, unshuffled
func (d *Deck) Rebuild() {
	cards := make([]*Card, 0, d.packs*52)
	for i := 0; i < d.packs; i++ {
		for _, suit := range Suits {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	d.Cards = cards
}

// Packs returns the number of packs the shoe was built from
func (d *Deck) Packs() int {
	return d.packs
}

// Shuffle will shuffle the cards currently in the deck using the supplied
// generator. The generator owns the randomness; shuffling never touches
// process-wide RNG state, so a seeded generator yields a reproducible order.
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
