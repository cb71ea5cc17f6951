package vocab

import (
	"github.com/jsphweid/tunesmith/midi"
	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/util"
	log "github.com/sirupsen/logrus"
)

// Rand picks fallback chords and pitches.
type Rand interface {
	Intn(n int) int
}

const (
	scaleRepeats    = 10
	extraPitchCount = 50
)

var (
	ascending  = []model.Token{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"}
	descending = []model.Token{"C5", "B4", "A4", "G4", "F4", "E4", "D4", "C4"}

	fallbackChords = []model.Token{"C4.E4.G4", "D4.F4.A4", "E4.G4.B4", "F4.A4.C5", "G4.B4.D5", "A4.C5.E5"}

	fallbackPitches = []model.Token{"C4", "E4", "G4", "C5", "E5", "G5"}
)

// Fallback synthesizes a corpus of C major scales with a random chord after each run,
// followed by random pitches. It always holds both pitch and chord tokens.
func Fallback(rnd Rand) model.Vocabulary {
	size := 2*scaleRepeats*(len(ascending)+1) + extraPitchCount
	res := make(model.Vocabulary, 0, size)
	for _, pattern := range [][]model.Token{ascending, descending} {
		for i := 0; i < scaleRepeats; i++ {
			res = append(res, pattern...)
			res = append(res, fallbackChords[rnd.Intn(len(fallbackChords))])
		}
	}
	for i := 0; i < extraPitchCount; i++ {
		res = append(res, fallbackPitches[rnd.Intn(len(fallbackPitches))])
	}
	return res
}

func processMidiFiles(paths []string) (model.Vocabulary, model.BuildReport) {
	logger := log.WithFields(log.Fields{
		"function": "vocab.processMidiFiles",
	})

	var res model.Vocabulary
	report := model.BuildReport{Files: len(paths)}
	for i, path := range paths {
		logger.Debugf("Processing %v of %v midi files", i+1, len(paths))
		tokens, err := midi.ReadTokens(path)
		// whatever was extracted before a failure is kept
		res = append(res, tokens...)
		if err != nil {
			report.Skipped++
			logger.WithFields(log.Fields{"file": path}).Warnf("Skipping because: %v", err)
		}
	}
	return res, report
}

// Build reads every midi file under corpusDir into tokens. Unreadable files are
// skipped and counted. When nothing usable is found the synthetic fallback corpus is
// used, so the result is never empty.
func Build(corpusDir string, rnd Rand) (model.Vocabulary, model.BuildReport) {
	paths, err := util.GatherAllMidiPaths(corpusDir, 0)
	if err != nil {
		log.WithFields(log.Fields{"dir": corpusDir}).Warnf("Could not scan corpus: %v", err)
	}

	res, report := processMidiFiles(paths)
	if len(res) == 0 {
		log.WithFields(log.Fields{
			"dir":     corpusDir,
			"files":   report.Files,
			"skipped": report.Skipped,
		}).Info("No usable corpus, creating sample music data")
		res = Fallback(rnd)
		report.Synthetic = true
	}

	log.WithFields(log.Fields{
		"tokens":  len(res),
		"skipped": report.Skipped,
	}).Info("Loaded vocabulary")
	return res, report
}
