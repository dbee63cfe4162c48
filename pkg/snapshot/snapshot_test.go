package snapshot

import "testing"

func TestValidate(t *testing.T) {
	Validate(t, "simple", struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{
		Name:  "blackjack",
		Count: 21,
	})
}
