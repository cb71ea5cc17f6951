package cmd

import (
	"fmt"

	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/preset"
	"github.com/jsphweid/tunesmith/studio"
	"github.com/spf13/cobra"
)

var presetOutDir string

func init() {
	presetCmd.Flags().StringVarP(&presetOutDir, "out", "o", constants.GetOutputDir(), "folder to write into")
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset [style...]",
	Short: "Writes fixed style melodies",
	Long:  `Writes fixed style melodies. With no style given, lists the styles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			listStyles()
			return nil
		}
		return writePresets(presetOutDir, args)
	},
}

func listStyles() {
	for _, name := range preset.Names() {
		s, _ := preset.Lookup(name)
		fmt.Printf("%-12v %v (%v notes, %v beats apart)\n", name, s.Description, len(s.Tokens), s.Step)
	}
}

func writePresets(outDir string, names []string) error {
	cfg := constants.FromEnv()
	cfg.OutputDir = outDir
	s := studio.New(cfg)

	for _, name := range names {
		filename, err := s.GeneratePreset(name)
		if err != nil {
			return err
		}
		printOK("Created %v", filename)
	}
	return nil
}
