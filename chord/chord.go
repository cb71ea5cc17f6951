package chord

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/pitch"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultKey stands in for any token that cannot be resolved.
const DefaultKey = pitch.MiddleC

var ErrMalformedToken = errors.New("malformed token")

// CreateChordKey turns a set of keys into a token: one key gives a pitch token,
// several give a chord token in ascending order. Keys in the lowest octave are raised
// one octave (see pitch.Clamp).
func CreateChordKey(keys []uint8) model.Token {
	sorted := make([]uint8, len(keys))
	for i, key := range keys {
		sorted[i] = pitch.Clamp(key)
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	names := make([]string, len(sorted))
	for i, key := range sorted {
		names[i] = pitch.Name(key)
	}
	return model.JoinTokens(names)
}

// GetEvents flattens every track into note-on groups keyed by absolute tick and
// returns them as tokens in time order.
func GetEvents(s *smf.SMF) (tokens []model.Token, err error) {
	// gomidi can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			tokens = nil
			err = errors.Errorf("could not read events: %v", r)
		}
	}()

	pressed := make(map[int64][]uint8)
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteStart(&channel, &key, &velocity) {
				pressed[absTicks] = append(pressed[absTicks], key)
			}
		}
	}

	ticks := maps.Keys(pressed)
	slices.Sort(ticks)
	for _, tick := range ticks {
		tokens = append(tokens, CreateChordKey(pressed[tick]))
	}
	return tokens, nil
}

func resolveMember(member string) (uint8, error) {
	// integers are pitch classes placed in the middle octave
	if pc, err := strconv.Atoi(member); err == nil {
		if pc < 0 {
			return 0, errors.Wrapf(ErrMalformedToken, "negative pitch class %d", pc)
		}
		return pitch.MiddleC + uint8(pc%12), nil
	}
	key, err := pitch.Parse(member)
	if err != nil {
		return 0, errors.Wrap(ErrMalformedToken, err.Error())
	}
	return key, nil
}

// Resolve maps a token to the MIDI keys it sounds.
func Resolve(token model.Token) ([]uint8, error) {
	members := token.Members()
	keys := make([]uint8, 0, len(members))
	for _, member := range members {
		key, err := resolveMember(member)
		if err != nil {
			return nil, errors.Wrapf(err, "token %q", string(token))
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ResolveOrDefault is Resolve with the malformed case collapsed to a single middle C.
// The second return is false when the default was substituted.
func ResolveOrDefault(token model.Token) ([]uint8, bool) {
	keys, err := Resolve(token)
	if err != nil {
		return []uint8{DefaultKey}, false
	}
	return keys, true
}

// Describe is a short human readable form used by the CLI.
func Describe(token model.Token) string {
	if token.IsChord() {
		return fmt.Sprintf("chord(%d) %s", len(token.Members()), token)
	}
	return fmt.Sprintf("note %s", token)
}
