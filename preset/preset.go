package preset

import (
	"github.com/jsphweid/tunesmith/model"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownStyle = errors.New("unknown style")

// Style is a fixed, hand written timeline.
type Style struct {
	Name        string
	Description string
	Filename    string
	Step        float64
	Tokens      []model.Token
}

var cMajorUpDown = []model.Token{
	"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5", "B4", "A4", "G4", "F4", "E4", "D4", "C4",
}

var progression = []model.Token{"C4.E4.G4", "G4.B4.D5", "F4.A4.C5", "C4.E4.G4"}

var styles = []Style{
	{
		Name:        "quick",
		Description: "Quick melody",
		Filename:    "quick_melody.mid",
		Step:        0.5,
		Tokens:      []model.Token{"C4", "E4", "G4", "C5", "E5", "G4", "C5", "E4"},
	},
	{
		Name:        "chords",
		Description: "Chord progression",
		Filename:    "chord_progression.mid",
		Step:        2.0,
		Tokens:      progression,
	},
	{
		Name:        "fast-scale",
		Description: "Fast scale",
		Filename:    "fast_scale.mid",
		Step:        0.2,
		Tokens:      cMajorUpDown,
	},
	{
		Name:        "happy",
		Description: "Happy melody",
		Filename:    "happy_melody.mid",
		Step:        0.4,
		Tokens:      []model.Token{"C4", "E4", "G4", "C5", "E5", "G5", "E5", "C5", "G4", "E4", "C4"},
	},
	{
		Name:        "sad",
		Description: "Sad melody",
		Filename:    "sad_melody.mid",
		Step:        0.6,
		Tokens:      []model.Token{"C4", "D4", "F4", "G4", "A4", "G4", "F4", "D4", "C4"},
	},
	{
		Name:        "epic",
		Description: "Epic theme",
		Filename:    "epic_theme.mid",
		Step:        3.0,
		Tokens:      []model.Token{"C3.G3.C4.E4", "G3.D4.G4.B4", "A3.E4.A4.C5", "F3.C4.F4.A4"},
	},
	{
		Name:        "short",
		Description: "Short melody",
		Filename:    "test_short.mid",
		Step:        0.3,
		Tokens:      repeat([]model.Token{"C4", "E4", "G4", "C5"}, 5),
	},
	{
		Name:        "test-chords",
		Description: "Test chords",
		Filename:    "test_chords.mid",
		Step:        1.0,
		Tokens:      progression,
	},
}

var aliases = map[string]string{
	"fast": "fast-scale",
}

func repeat(tokens []model.Token, n int) []model.Token {
	var res []model.Token
	for i := 0; i < n; i++ {
		res = append(res, tokens...)
	}
	return res
}

// Names lists every style in table order. Aliases are not included.
func Names() []string {
	res := make([]string, len(styles))
	for i, s := range styles {
		res[i] = s.Name
	}
	return res
}

// Lookup finds a style by name or alias. The returned Style shares no memory with
// the table.
func Lookup(name string) (Style, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, s := range styles {
		if s.Name == name {
			s.Tokens = slices.Clone(s.Tokens)
			return s, nil
		}
	}
	return Style{}, errors.Wrapf(ErrUnknownStyle, "%q", name)
}

// Get returns the timeline of a style.
func Get(name string) (model.Timeline, error) {
	s, err := Lookup(name)
	if err != nil {
		return model.Timeline{}, err
	}
	return s.Timeline(), nil
}

func (s Style) Timeline() model.Timeline {
	return model.NewTimeline(s.Tokens, s.Step)
}
