package cmd

import (
	"github.com/spf13/cobra"
)

var demoOutDir string

// one of each shape: melody, repeated motif, chords, fast run
var demoStyles = []string{"quick", "short", "test-chords", "fast-scale"}

func init() {
	demoCmd.Flags().StringVarP(&demoOutDir, "out", "o", ".", "folder to write into")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Writes a handful of test melodies",
	Long:  `Writes a handful of test melodies so playback can be checked quickly.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTitle("Quick Test")
		if err := writePresets(demoOutDir, demoStyles); err != nil {
			return err
		}
		printDim("All test files created!")
		return nil
	},
}
