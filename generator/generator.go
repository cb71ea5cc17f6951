package generator

import (
	"math"

	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/util"
	"github.com/pkg/errors"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Rand is the randomness Generate draws on. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

const progressEvery = 20

type Options struct {
	// SeedSize is how many leading vocabulary tokens are copied verbatim.
	SeedSize int
	// WindowCapacity bounds the pattern window of recently emitted tokens.
	WindowCapacity int
	// RecentBias is the chance a continuation token is drawn from the window
	// instead of the whole vocabulary.
	RecentBias float64
	// Progress, when set, is called every 20 events with the index reached.
	Progress func(done, total int)
}

func DefaultOptions() Options {
	return Options{
		SeedSize:       constants.SeedSize,
		WindowCapacity: constants.WindowCapacity,
		RecentBias:     constants.RecentBias,
	}
}

func (o Options) validate() error {
	if o.SeedSize < 0 {
		return errors.Wrapf(ErrInvalidParameter, "seed size %d", o.SeedSize)
	}
	if o.WindowCapacity < 1 {
		return errors.Wrapf(ErrInvalidParameter, "window capacity %d", o.WindowCapacity)
	}
	if !(o.RecentBias >= 0 && o.RecentBias <= 1) {
		return errors.Wrapf(ErrInvalidParameter, "recent bias %v", o.RecentBias)
	}
	return nil
}

// window is a FIFO of the most recently emitted tokens.
type window struct {
	tokens   []model.Token
	capacity int
}

func newWindow(capacity int) *window {
	return &window{tokens: make([]model.Token, 0, capacity+1), capacity: capacity}
}

func (w *window) push(t model.Token) {
	w.tokens = append(w.tokens, t)
	if len(w.tokens) > w.capacity {
		copy(w.tokens, w.tokens[1:])
		w.tokens = w.tokens[:len(w.tokens)-1]
	}
}

func pick(tokens []model.Token, rnd Rand) model.Token {
	return tokens[rnd.Intn(len(tokens))]
}

// Generate emits length tokens spaced step beats apart. The first
// min(SeedSize, len(v)) tokens copy the vocabulary's opening; the rest are drawn from
// the pattern window with probability RecentBias and from the full vocabulary
// otherwise.
func Generate(v model.Vocabulary, length int, step float64, opts Options, rnd Rand) (model.Timeline, error) {
	if length < 1 {
		return model.Timeline{}, errors.Wrapf(ErrInvalidParameter, "length %d", length)
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return model.Timeline{}, errors.Wrapf(ErrInvalidParameter, "step duration %v", step)
	}
	if len(v) == 0 {
		return model.Timeline{}, errors.Wrap(ErrInvalidParameter, "empty vocabulary")
	}
	if rnd == nil {
		return model.Timeline{}, errors.Wrap(ErrInvalidParameter, "no random source")
	}
	if err := opts.validate(); err != nil {
		return model.Timeline{}, err
	}

	seedSize := util.Min(opts.SeedSize, len(v))
	recent := newWindow(opts.WindowCapacity)
	events := make([]model.Event, 0, length)

	for i := 0; i < length; i++ {
		var next model.Token
		switch {
		case i < seedSize:
			next = v[i]
		case len(recent.tokens) > 0 && rnd.Float64() < opts.RecentBias:
			next = pick(recent.tokens, rnd)
		default:
			next = pick(v, rnd)
		}
		recent.push(next)
		events = append(events, model.Event{Token: next, Onset: float64(i) * step})

		if opts.Progress != nil && i%progressEvery == 0 {
			opts.Progress(i, length)
		}
	}

	return model.Timeline{Step: step, Events: events}, nil
}
