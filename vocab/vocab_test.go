package vocab

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGarbage(t *testing.T, path string) {
	require.NoError(t, os.WriteFile(path, []byte("definitely not midi"), 0666))
}

func countKinds(v model.Vocabulary) (pitches, chords int) {
	for _, tok := range v {
		if tok.IsChord() {
			chords++
		} else {
			pitches++
		}
	}
	return
}

func TestFallbackShape(t *testing.T) {
	v := Fallback(rand.New(rand.NewSource(1)))

	assert := assert.New(t)
	assert.Len(v, 230)
	assert.Equal(ascending, v[:8])
	assert.True(v[8].IsChord())
	assert.Equal(descending, v[90:98])
	assert.True(v[98].IsChord())

	pitches, chords := countKinds(v)
	assert.Equal(20, chords)
	assert.Equal(210, pitches)
	for _, tok := range v[180:] {
		assert.Contains(fallbackPitches, tok)
	}
}

func TestBuildNeverEmpty(t *testing.T) {
	garbageDir := t.TempDir()
	writeGarbage(t, filepath.Join(garbageDir, "one.mid"))
	writeGarbage(t, filepath.Join(garbageDir, "two.midi"))

	cases := map[string]struct {
		dir     string
		skipped int
	}{
		"missing dir": {filepath.Join(t.TempDir(), "missing"), 0},
		"empty dir":   {t.TempDir(), 0},
		"only broken": {garbageDir, 2},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v, report := Build(c.dir, rand.New(rand.NewSource(1)))
			assert.NotEmpty(t, v)
			assert.True(t, report.Synthetic)
			assert.Equal(t, c.skipped, report.Skipped)

			pitches, chords := countKinds(v)
			assert.Positive(t, pitches)
			assert.Positive(t, chords)
		})
	}
}

func TestBuildReadsCorpusAndSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	first := model.NewTimeline([]model.Token{"C4", "E4", "C4.E4.G4"}, 0.5)
	second := model.NewTimeline([]model.Token{"A3", "F#4"}, 1)
	require.NoError(t, render.WriteFile(first, filepath.Join(dir, "a.mid")))
	require.NoError(t, render.WriteFile(second, filepath.Join(dir, "b.mid")))
	writeGarbage(t, filepath.Join(dir, "c.mid"))

	v, report := Build(dir, rand.New(rand.NewSource(1)))

	assert := assert.New(t)
	assert.Equal(model.Vocabulary{"C4", "E4", "C4.E4.G4", "A3", "F#4"}, v)
	assert.Equal(model.BuildReport{Files: 3, Skipped: 1}, report)
}

func TestCacheBuildsOnce(t *testing.T) {
	var builds int32
	c := NewCache(func() (model.Vocabulary, model.BuildReport) {
		atomic.AddInt32(&builds, 1)
		return model.Vocabulary{"C4"}, model.BuildReport{}
	}, time.Millisecond)

	for i := 0; i < 3; i++ {
		v, _ := c.Get()
		assert.Equal(t, model.Vocabulary{"C4"}, v)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&builds))
}

func TestCacheReloadPublishes(t *testing.T) {
	var builds int32
	c := NewCache(func() (model.Vocabulary, model.BuildReport) {
		n := atomic.AddInt32(&builds, 1)
		if n == 1 {
			return model.Vocabulary{"C4"}, model.BuildReport{}
		}
		return model.Vocabulary{"D4", "E4"}, model.BuildReport{Files: 1}
	}, time.Millisecond)

	v, _ := c.Get()
	assert.Equal(t, model.Vocabulary{"C4"}, v)

	report := c.Reload()
	assert.Equal(t, 1, report.Files)
	v, _ = c.Get()
	assert.Equal(t, model.Vocabulary{"D4", "E4"}, v)
}

func TestCacheInvalidateIsDebounced(t *testing.T) {
	var builds int32
	c := NewCache(func() (model.Vocabulary, model.BuildReport) {
		atomic.AddInt32(&builds, 1)
		return model.Vocabulary{"C4"}, model.BuildReport{}
	}, 50*time.Millisecond)

	for i := 0; i < 5; i++ {
		c.Invalidate()
	}
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&builds) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&builds))
}
