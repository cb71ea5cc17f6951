package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/render"
	"github.com/jsphweid/tunesmith/studio"
	"github.com/jsphweid/tunesmith/util"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	length int
	step   float64
	out    string
	corpus string
	seed   int64
	window int
	bias   float64
}

func init() {
	f := generateCmd.Flags()
	f.IntVarP(&generateFlags.length, "length", "n", 80, "number of notes to generate")
	f.Float64Var(&generateFlags.step, "step", studio.AIStep, "beats between notes")
	f.StringVarP(&generateFlags.out, "out", "o", "ai_music.mid", "midi file to write")
	f.StringVar(&generateFlags.corpus, "corpus", constants.GetCorpusDir(), "folder of midi files to learn from")
	f.Int64Var(&generateFlags.seed, "seed", 0, "random seed, 0 picks one from the clock")
	f.IntVar(&generateFlags.window, "window", constants.WindowCapacity, "how many recent notes to favor")
	f.Float64Var(&generateFlags.bias, "bias", constants.RecentBias, "chance of reusing a recent note")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates AI music into a midi file",
	Long: `Generates AI music into a midi file. The opening copies the start of the
vocabulary; after that notes are drawn from recent history or the whole vocabulary.
Add midi files to the corpus folder for better results.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate()
	},
}

func generate() error {
	printTitle("AI Music Generator")

	cfg := constants.FromEnv()
	cfg.CorpusDir = generateFlags.corpus
	cfg.Seed = generateFlags.seed
	cfg.WindowCapacity = generateFlags.window
	cfg.RecentBias = generateFlags.bias
	s := studio.New(cfg)

	fmt.Println("Preparing music data...")
	v, report := s.Vocabulary()
	if report.Synthetic {
		fmt.Println("Created sample music patterns")
	}
	fmt.Printf("Loaded %v music notes\n", len(v))

	fmt.Println("Generating AI music...")
	t, err := s.Compose(generateFlags.length, generateFlags.step, func(done, total int) {
		fmt.Printf("Generated %v/%v notes...\n", done, total)
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(generateFlags.out); dir != "." {
		if err := util.EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := render.WriteFile(t, generateFlags.out); err != nil {
		return err
	}
	printOK("AI music generated: %v", generateFlags.out)
	printDim("You can add MIDI files to the '%v' folder for better results.", cfg.CorpusDir)
	return nil
}
