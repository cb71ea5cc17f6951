package chord

import (
	"testing"

	"github.com/jsphweid/tunesmith/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateChordKeySortsAndDedupes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Token("C4.E4.G4"), CreateChordKey([]uint8{67, 60, 64, 60}))
	assert.Equal(model.Token("A4"), CreateChordKey([]uint8{69}))
}

func TestCreateChordKeyClampsLowestOctave(t *testing.T) {
	token := CreateChordKey([]uint8{0, 12})
	assert.Equal(t, model.Token("C0"), token)

	keys, err := Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, []uint8{12}, keys)
}

func TestCreateChordKeyLeavesInputAlone(t *testing.T) {
	keys := []uint8{67, 60}
	CreateChordKey(keys)
	assert.Equal(t, []uint8{67, 60}, keys)
}

func TestResolve(t *testing.T) {
	cases := []struct {
		token model.Token
		want  []uint8
	}{
		{"C4", []uint8{60}},
		{"C4.E4.G4", []uint8{60, 64, 67}},
		{"G4.C4", []uint8{67, 60}},
		{"0.4.7", []uint8{60, 64, 67}},
		{"11", []uint8{71}},
		{"C3.4", []uint8{48, 64}},
	}
	for _, c := range cases {
		t.Run(string(c.token), func(t *testing.T) {
			got, err := Resolve(c.token)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveMalformed(t *testing.T) {
	for _, tok := range []model.Token{"X9", "C4.Q4", "C4..E4", "-3", ""} {
		_, err := Resolve(tok)
		assert.True(t, errors.Is(err, ErrMalformedToken), string(tok))
	}
}

func TestResolveOrDefaultSubstitutesMiddleC(t *testing.T) {
	assert := assert.New(t)

	keys, ok := ResolveOrDefault("C4.nope.G4")
	assert.False(ok)
	assert.Equal([]uint8{DefaultKey}, keys)

	keys, ok = ResolveOrDefault("C9223372036854775807")
	assert.False(ok)
	assert.Equal([]uint8{DefaultKey}, keys)

	keys, ok = ResolveOrDefault("D4")
	assert.True(ok)
	assert.Equal([]uint8{62}, keys)
}

func TestGetEventsGroupsByTick(t *testing.T) {
	var melody smf.Track
	melody.Add(0, midi.NoteOn(0, 72, 100))
	melody.Add(480, midi.NoteOff(0, 72))
	melody.Add(0, midi.NoteOn(0, 74, 100))
	melody.Add(480, midi.NoteOff(0, 74))
	melody.Close(0)

	var chords smf.Track
	chords.Add(0, midi.NoteOn(1, 48, 90))
	chords.Add(0, midi.NoteOn(1, 52, 90))
	chords.Add(0, midi.NoteOn(1, 55, 90))
	chords.Add(960, midi.NoteOff(1, 48))
	chords.Add(0, midi.NoteOff(1, 52))
	chords.Add(0, midi.NoteOff(1, 55))
	chords.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)
	require.NoError(t, s.Add(melody))
	require.NoError(t, s.Add(chords))

	tokens, err := GetEvents(s)
	require.NoError(t, err)
	assert.Equal(t, []model.Token{"C3.E3.G3.C5", "D5"}, tokens)
}
