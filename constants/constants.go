package constants

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultCorpusDir = "midi_files"
	DefaultOutputDir = "web_music"
	DefaultPort      = 5000

	// DefaultAILength is used when /generate/ai gets no usable length.
	DefaultAILength = 50
	MaxAILength     = 2000

	SeedSize       = 10
	WindowCapacity = 8
	RecentBias     = 0.7
)

// Config is everything the studio needs to know about its surroundings.
type Config struct {
	CorpusDir      string
	OutputDir      string
	Port           int
	WindowCapacity int
	RecentBias     float64
	// Seed of 0 means seed from the clock.
	Seed int64
}

func GetCorpusDir() string {
	path := os.Getenv("CORPUS_PATH")
	if path != "" {
		return path
	}
	return DefaultCorpusDir
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return DefaultOutputDir
}

func getInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("ignoring %v=%q: %v", name, raw, err)
		return fallback
	}
	return n
}

func getFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warnf("ignoring %v=%q: %v", name, raw, err)
		return fallback
	}
	return n
}

// FromEnv reads CORPUS_PATH, OUTPUT_PATH, PORT, WINDOW_CAPACITY, RECENT_BIAS and
// SEED, falling back to the defaults above.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.CorpusDir = GetCorpusDir()
	cfg.OutputDir = GetOutputDir()
	cfg.Port = getInt("PORT", cfg.Port)
	cfg.WindowCapacity = getInt("WINDOW_CAPACITY", cfg.WindowCapacity)
	cfg.RecentBias = getFloat("RECENT_BIAS", cfg.RecentBias)
	cfg.Seed = int64(getInt("SEED", 0))
	return cfg
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() Config {
	return Config{
		CorpusDir:      DefaultCorpusDir,
		OutputDir:      DefaultOutputDir,
		Port:           DefaultPort,
		WindowCapacity: WindowCapacity,
		RecentBias:     RecentBias,
	}
}

// ConfigureLogging sets the logrus level from LOG_LEVEL.
func ConfigureLogging() {
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
