package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/jsphweid/tunesmith/constants"
	"github.com/jsphweid/tunesmith/model"
	"github.com/jsphweid/tunesmith/util"
	"github.com/jsphweid/tunesmith/vocab"
	"github.com/spf13/cobra"
)

var reportCorpus string

func init() {
	reportCmd.Flags().StringVar(&reportCorpus, "corpus", constants.GetCorpusDir(), "folder of midi files")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports on the vocabulary",
	Long:  `Builds the vocabulary from the corpus and reports what is in it.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, r := vocab.Build(reportCorpus, rand.New(rand.NewSource(time.Now().UnixNano())))
		printReport(analyzeVocabulary(v, r))
	},
}

type tokenCount struct {
	token model.Token
	count int
}

type vocabularyReport struct {
	build    model.BuildReport
	numNotes int
	pitches  int
	chords   int
	distinct int
	top      []tokenCount
}

func analyzeVocabulary(v model.Vocabulary, build model.BuildReport) vocabularyReport {
	report := vocabularyReport{build: build, numNotes: len(v)}

	counts := make(map[model.Token]int)
	for _, token := range v {
		counts[token]++
		if token.IsChord() {
			report.chords++
		} else {
			report.pitches++
		}
	}
	report.distinct = len(counts)

	for _, token := range util.GetKeys(counts) {
		report.top = append(report.top, tokenCount{token, counts[token]})
	}
	sort.SliceStable(report.top, func(i, j int) bool {
		return report.top[i].count > report.top[j].count
	})
	report.top = report.top[:util.Min(5, len(report.top))]
	return report
}

func printReport(r vocabularyReport) {
	fmt.Printf("files: %v\n", r.build.Files)
	fmt.Printf("skipped files: %v\n", r.build.Skipped)
	fmt.Printf("sample data: %v\n", r.build.Synthetic)
	fmt.Printf("tokens: %v (%v notes, %v chords, %v distinct)\n", r.numNotes, r.pitches, r.chords, r.distinct)
	for _, tc := range r.top {
		fmt.Printf("  %-16v %v\n", tc.token, tc.count)
	}
}
