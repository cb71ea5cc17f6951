package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/tunesmith/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteOn struct {
	tick int64
	key  uint8
}

func collectNoteOns(s *smf.SMF) []noteOn {
	var res []noteOn
	for _, track := range s.Tracks {
		var abs int64
		for _, evt := range track {
			abs += int64(evt.Delta)
			var ch, key, vel uint8
			if evt.Message.GetNoteStart(&ch, &key, &vel) {
				res = append(res, noteOn{abs, key})
			}
		}
	}
	return res
}

func TestEncodeProducesReadableMidi(t *testing.T) {
	tl := model.NewTimeline([]model.Token{"C4", "E4", "C4.E4.G4"}, 0.5)

	var buf bytes.Buffer
	require.NoError(t, Encode(tl, &buf))

	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []noteOn{
		{0, 60},
		{240, 64},
		{480, 60},
		{480, 64},
		{480, 67},
	}, collectNoteOns(parsed))
}

func TestMalformedTokenBecomesMiddleC(t *testing.T) {
	tl := model.NewTimeline([]model.Token{"D4", "C4.??", "E4"}, 1)

	s, err := Build(tl)
	require.NoError(t, err)
	assert.Equal(t, []noteOn{{0, 62}, {480, 60}, {960, 64}}, collectNoteOns(s))
}

func TestRepeatedKeyIsReleasedBeforeRestrike(t *testing.T) {
	tl := model.NewTimeline([]model.Token{"C4", "C4"}, 1)
	msgs := schedule(tl)

	require.Len(t, msgs, 4)
	assert.Equal(t, noteMsg{tick: 480, off: true, key: 60}, msgs[1])
	assert.Equal(t, noteMsg{tick: 480, key: 60}, msgs[2])
}

func TestEmptyTimeline(t *testing.T) {
	_, err := Build(model.Timeline{Step: 1})
	assert.ErrorIs(t, err, ErrEmptyTimeline)
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.mid")
	tl := model.NewTimeline([]model.Token{"C4", "G4"}, 0.5)

	require.NoError(t, WriteFile(tl, path))
	require.NoError(t, WriteFile(tl, path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.mid", entries[0].Name())
}
