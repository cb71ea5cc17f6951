package model

// Event is a single timeline entry. Onset is in beats.
type Event struct {
	Token Token
	Onset float64
}

// Timeline is an ordered event sequence. Step is the constant spacing between
// consecutive onsets and doubles as each event's sounding length.
type Timeline struct {
	Step   float64
	Events []Event
}

// NewTimeline places tokens at index * step.
func NewTimeline(tokens []Token, step float64) Timeline {
	events := make([]Event, len(tokens))
	for i, tok := range tokens {
		events[i] = Event{Token: tok, Onset: float64(i) * step}
	}
	return Timeline{Step: step, Events: events}
}

func (t Timeline) Tokens() []Token {
	res := make([]Token, len(t.Events))
	for i, e := range t.Events {
		res[i] = e.Token
	}
	return res
}
