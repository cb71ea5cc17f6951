package model

import "strings"

// ChordDelimiter joins the member pitches of a chord token.
const ChordDelimiter = "."

// Token is either a single pitch ("C4") or a chord ("C4.E4.G4").
type Token string

// IsChord reports whether the token holds more than one pitch. The delimiter is the
// only discriminator; there is no separate tag.
func (t Token) IsChord() bool {
	return strings.Contains(string(t), ChordDelimiter)
}

// Members splits a chord into its pitch sub-tokens. A pitch token yields itself.
func (t Token) Members() []string {
	return strings.Split(string(t), ChordDelimiter)
}

func JoinTokens(members []string) Token {
	return Token(strings.Join(members, ChordDelimiter))
}

// Vocabulary is in corpus order. Duplicates are expected.
type Vocabulary = []Token

type BuildReport struct {
	Files     int
	Skipped   int
	Synthetic bool
}
