package cmd

import (
	"github.com/jsphweid/tunesmith/constants"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tunesmith",
	Short: "Generates short melodies and chord progressions",
	Long: `tunesmith builds a token vocabulary from a folder of MIDI files (or a built in
sample corpus), generates new note and chord sequences from it and writes them
out as MIDI files. It also serves a small web page for doing the same.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		constants.ConfigureLogging()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
