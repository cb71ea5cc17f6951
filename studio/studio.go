package studio

import (
	"math/rand"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/file"
	"github.com/jsphweid/tunesmith/generator"
	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/preset"
	"github.com/jsphweid/tunesmith/render"
	"github.com/jsphweid/tunesmith/util"
	"github.com/jsphweid/tunesmith/vocab"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// AIStep is the beat spacing of generated pieces.
	AIStep = 0.5

	reloadDelay = 500 * time.Millisecond
)

var ErrNotFound = errors.New("file not found")

// Studio ties the vocabulary, generator, presets and renderer to an output directory.
// It is safe for concurrent use.
type Studio struct {
	cfg   constants.Config
	cache *vocab.Cache
	seed  int64
}

// New takes cfg as given apart from Seed. A zero WindowCapacity makes Compose fail and a
// zero RecentBias never draws from the window, so start from constants.DefaultConfig or
// constants.FromEnv.
func New(cfg constants.Config) *Studio {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s := &Studio{cfg: cfg, seed: cfg.Seed}
	s.cache = vocab.NewCache(func() (model.Vocabulary, model.BuildReport) {
		return vocab.Build(cfg.CorpusDir, s.newRand())
	}, reloadDelay)
	return s
}

// newRand hands each call its own source. Seeds advance per call so a fixed
// Config.Seed gives a reproducible sequence of calls.
func (s *Studio) newRand() *rand.Rand {
	return rand.New(rand.NewSource(atomic.AddInt64(&s.seed, 1)))
}

func (s *Studio) Config() constants.Config {
	return s.cfg
}

func (s *Studio) Options() generator.Options {
	opts := generator.DefaultOptions()
	opts.WindowCapacity = s.cfg.WindowCapacity
	opts.RecentBias = s.cfg.RecentBias
	return opts
}

func (s *Studio) Vocabulary() (model.Vocabulary, model.BuildReport) {
	return s.cache.Get()
}

// ReloadCorpus schedules a debounced rebuild of the vocabulary.
func (s *Studio) ReloadCorpus() {
	s.cache.Invalidate()
}

// Compose generates a timeline from the cached vocabulary.
func (s *Studio) Compose(length int, step float64, progress func(done, total int)) (model.Timeline, error) {
	v, _ := s.Vocabulary()
	opts := s.Options()
	opts.Progress = progress
	return generator.Generate(v, length, step, opts, s.newRand())
}

func (s *Studio) write(t model.Timeline, filename string) (string, error) {
	if err := util.EnsureDir(s.cfg.OutputDir); err != nil {
		return "", err
	}
	if err := render.WriteFile(t, filepath.Join(s.cfg.OutputDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// GeneratePreset renders a style into its fixed filename.
func (s *Studio) GeneratePreset(name string) (string, error) {
	style, err := preset.Lookup(name)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"style": style.Name}).Info("Generating preset")
	return s.write(style.Timeline(), style.Filename)
}

// GenerateAI composes length notes and renders them into ai_music_<length>notes.mid.
func (s *Studio) GenerateAI(length int) (string, error) {
	t, err := s.Compose(length, AIStep, nil)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"length": length}).Info("Generated AI music")
	return s.write(t, file.ForLength(length))
}

func (s *Studio) ListFiles() ([]string, error) {
	return util.ListMidiFiles(s.cfg.OutputDir)
}

// Path resolves a listed filename to its location on disk.
func (s *Studio) Path(name string) (string, error) {
	if !file.IsServable(name) {
		return "", errors.Wrapf(ErrNotFound, "%q", name)
	}
	return filepath.Join(s.cfg.OutputDir, name), nil
}
