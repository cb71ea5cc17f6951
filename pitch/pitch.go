package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MiddleC is the MIDI key of C4.
const MiddleC uint8 = 60

const (
	defaultOctave = 4
	maxOctave     = 9
)

// LowestNamed is the lowest key Name spells in a form Parse reads back.
const LowestNamed uint8 = 12

var ErrBadName = errors.New("bad pitch name")

var letterClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Parse converts a note name such as "C4", "F#3", "Bb2" or "E-5" to a MIDI key.
// Accidentals may repeat; "-" and "b" are both flats. A missing octave means 4.
func Parse(name string) (uint8, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return 0, errors.Wrap(ErrBadName, "empty")
	}

	class, ok := letterClasses[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, errors.Wrapf(ErrBadName, "%q has no note letter", name)
	}

	i := 1
	for ; i < len(s); i++ {
		switch s[i] {
		case '#':
			class++
			continue
		case 'b', '-':
			// "-" is always a flat, so written octaves are never negative
			class--
			continue
		}
		break
	}

	octave := defaultOctave
	if rest := s[i:]; rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return 0, errors.Wrapf(ErrBadName, "%q has a bad octave", name)
		}
		if n < 0 || n > maxOctave {
			return 0, errors.Wrapf(ErrBadName, "%q is outside the MIDI range", name)
		}
		octave = n
	}

	key := (octave+1)*12 + class
	if key < 0 || key > 127 {
		return 0, errors.Wrapf(ErrBadName, "%q is outside the MIDI range", name)
	}
	return uint8(key), nil
}

// Clamp raises keys below LowestNamed by an octave. Octave -1 cannot be written
// because "-" is a flat.
func Clamp(key uint8) uint8 {
	if key < LowestNamed {
		return key + 12
	}
	return key
}

// Name spells a MIDI key with sharps, e.g. 61 -> "C#4". The key is clamped first, so
// Parse(Name(k)) == Clamp(k) for every key.
func Name(key uint8) string {
	key = Clamp(key)
	return fmt.Sprintf("%s%d", sharpNames[key%12], int(key)/12-1)
}
