package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("none", MoveNone.String())
	a.Equal("hit", MoveHit.String())
	a.Equal("stand", MoveStand.String())
	a.Equal("double", MoveDouble.String())
	a.Equal("split", MoveSplit.String())
	a.Equal("insurance", MoveInsurance.String())
	a.Equal("even money", MoveEvenMoney.String())

	a.Panics(func() {
		_ = Move(99).String()
	})
}

func TestMoveFromString(t *testing.T) {
	a := assert.New(t)

	move, err := MoveFromString("hit")
	a.NoError(err)
	a.Equal(MoveHit, move)

	move, err = MoveFromString("Even Money")
	a.NoError(err)
	a.Equal(MoveEvenMoney, move)

	move, err = MoveFromString("even-money")
	a.NoError(err)
	a.Equal(MoveEvenMoney, move)

	move, err = MoveFromString("fold")
	a.EqualError(err, "invalid move: fold")
	a.Equal(MoveNone, move)
}
