package render

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/tunesmith/chord"
	"github.com/jsphweid/tunesmith/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerBeat = 480
	BPM          = 120.0
	Velocity     = 90
	piano        = 0
)

var ErrEmptyTimeline = errors.New("timeline has no events")

type noteMsg struct {
	tick uint32
	off  bool
	key  uint8
}

func toTicks(beats float64) uint32 {
	return uint32(math.Round(beats * TicksPerBeat))
}

func uniqueKeys(keys []uint8) []uint8 {
	seen := make(map[uint8]bool, len(keys))
	res := keys[:0:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			res = append(res, k)
		}
	}
	return res
}

func schedule(t model.Timeline) []noteMsg {
	logger := log.WithFields(log.Fields{
		"function": "render.schedule",
	})

	length := toTicks(t.Step)
	if length == 0 {
		length = 1
	}

	var msgs []noteMsg
	for i, evt := range t.Events {
		keys, ok := chord.ResolveOrDefault(evt.Token)
		if !ok {
			logger.WithFields(log.Fields{
				"token": string(evt.Token),
				"index": i,
			}).Warn("malformed token, substituting middle C")
		}
		on := toTicks(evt.Onset)
		for _, key := range uniqueKeys(keys) {
			msgs = append(msgs, noteMsg{tick: on, key: key}, noteMsg{tick: on + length, off: true, key: key})
		}
	}

	// note offs go first so a repeated key is released before it is struck again
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].off && !msgs[j].off
	})
	return msgs
}

// Build converts a timeline to a single-track piano SMF.
func Build(t model.Timeline) (*smf.SMF, error) {
	if len(t.Events) == 0 {
		return nil, ErrEmptyTimeline
	}

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("Piano"))
	track.Add(0, smf.MetaTempo(BPM))
	track.Add(0, midi.ProgramChange(0, piano))

	var last uint32
	for _, m := range schedule(t) {
		delta := m.tick - last
		last = m.tick
		if m.off {
			track.Add(delta, midi.NoteOff(0, m.key))
		} else {
			track.Add(delta, midi.NoteOn(0, m.key, Velocity))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerBeat)
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func Encode(t model.Timeline, w io.Writer) error {
	s, err := Build(t)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "could not write midi")
}

// WriteFile renders into a uniquely named temp file next to path and renames it into
// place, so concurrent writers of the same name never interleave. Last writer wins.
func WriteFile(t model.Timeline, path string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "could not create %v", tmp)
	}
	if err := Encode(t, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "could not close %v", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "could not move midi into %v", path)
	}
	return nil
}
