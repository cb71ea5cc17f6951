package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordIffDelimiter(t *testing.T) {
	assert := assert.New(t)
	assert.False(Token("C4").IsChord())
	assert.False(Token("F#3").IsChord())
	assert.True(Token("C4.E4.G4").IsChord())
	assert.True(Token("0.4.7").IsChord())
}

func TestSplitJoinRoundTrip(t *testing.T) {
	for _, tok := range []Token{"C4", "C4.E4.G4", "G4.C4", "C3.G3.C4.E4", "0.4.7", "a..b"} {
		t.Run(string(tok), func(t *testing.T) {
			assert.Equal(t, tok, JoinTokens(tok.Members()))
		})
	}
}

func TestNewTimeline(t *testing.T) {
	tl := NewTimeline([]Token{"C4", "D4", "E4"}, 0.25)
	assert.Equal(t, Timeline{
		Step: 0.25,
		Events: []Event{
			{Token: "C4", Onset: 0},
			{Token: "D4", Onset: 0.25},
			{Token: "E4", Onset: 0.5},
		},
	}, tl)
	assert.Equal(t, []Token{"C4", "D4", "E4"}, tl.Tokens())
}
