package preset

import (
	"testing"

	"github.com/jsphweid/tunesmith/chord"
	"github.com/jsphweid/tunesmith/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownStyle(t *testing.T) {
	tl, err := Get("unknown-style")
	assert.True(t, errors.Is(err, ErrUnknownStyle))
	assert.Empty(t, tl.Events)
}

func TestHappyIsFixed(t *testing.T) {
	first, err := Get("happy")
	require.NoError(t, err)
	second, err := Get("happy")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.NotEmpty(first.Events)
	assert.Equal(first, second)
	assert.Equal(model.Event{Token: "C4", Onset: 0}, first.Events[0])
	assert.Equal(model.Token("G5"), first.Events[5].Token)
	assert.Equal(0.4, first.Step)
}

func TestCallersCannotMutateTable(t *testing.T) {
	s, err := Lookup("sad")
	require.NoError(t, err)
	s.Tokens[0] = "B9"

	again, err := Lookup("sad")
	require.NoError(t, err)
	assert.Equal(t, model.Token("C4"), again.Tokens[0])
}

func TestAlias(t *testing.T) {
	viaAlias, err := Lookup("fast")
	require.NoError(t, err)
	assert.Equal(t, "fast-scale", viaAlias.Name)
	assert.Len(t, viaAlias.Tokens, 15)
	assert.NotContains(t, Names(), "fast")
}

func TestEveryStyleIsRenderable(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			require.NoError(t, err)
			assert.Positive(t, s.Step)
			assert.NotEmpty(t, s.Filename)

			tl := s.Timeline()
			require.Len(t, tl.Events, len(s.Tokens))
			for i, evt := range tl.Events {
				assert.Equal(t, float64(i)*s.Step, evt.Onset)
				_, err := chord.Resolve(evt.Token)
				assert.NoError(t, err, string(evt.Token))
			}
		})
	}
}

func TestEpicIsFourNoteChords(t *testing.T) {
	tl, err := Get("epic")
	require.NoError(t, err)
	for _, evt := range tl.Events {
		assert.True(t, evt.Token.IsChord())
		assert.Len(t, evt.Token.Members(), 4)
	}
	assert.Equal(t, 9.0, tl.Events[3].Onset)
}
