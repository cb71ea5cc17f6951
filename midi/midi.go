package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jsphweid/tunesmith/chord"
	"github.com/jsphweid/tunesmith/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Errorf("panic parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

// ReadTokens parses one corpus file into its tokens in time order. Any failure is
// reported as model.ErrParseSkipped.
func ReadTokens(filepath string) ([]model.Token, error) {
	parsed, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, errors.Wrap(model.ErrParseSkipped, err.Error())
	}
	tokens, err := chord.GetEvents(parsed)
	if err != nil {
		return tokens, errors.Wrap(model.ErrParseSkipped, fmt.Sprintf("%s: %v", filepath, err))
	}
	return tokens, nil
}
