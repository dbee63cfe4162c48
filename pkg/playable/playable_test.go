package playable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	lm := SimpleLogMessage(0, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.NotEmpty(t, lm.UUID)
	assert.False(t, lm.Time.IsZero())
	assert.Nil(t, lm.Cards)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice(0, "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	_ = json.Unmarshal([]byte(`{"amount":25}`), &data)
	val, ok := data.GetInt("amount")
	a.True(ok)
	a.Equal(25, val)

	ad := AdditionalData{"amount": "25"}
	val, ok = ad.GetInt("amount")
	a.False(ok)
	a.Equal(0, val)
}

func TestOK(t *testing.T) {
	a := assert.New(t)

	res := OK()
	a.Equal("status", res.Key)
	a.Equal("OK", res.Value)
	a.Equal("", res.Context)

	res = OK("ctx")
	a.Equal("ctx", res.Context)
}
