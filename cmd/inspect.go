package cmd

import (
	"fmt"

	"github.com/jsphweid/tunesmith/chord"
	"github.com/jsphweid/tunesmith/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the tokens of a midi file",
	Long:  `Prints the tokens a midi file contributes to the vocabulary.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	tokens, err := midi.ReadTokens(path)
	if err != nil {
		return err
	}
	for i, token := range tokens {
		keys, _ := chord.ResolveOrDefault(token)
		fmt.Printf("%4d  %-24v %v\n", i, chord.Describe(token), keys)
	}
	printDim("%v tokens", len(tokens))
	return nil
}
