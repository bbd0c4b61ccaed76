package transcript

// Turn is one speaker turn found by Segment. Index is 1-based and counts
// every accepted marker, including turns a caller later discards.
type Turn struct {
	Index   int
	Speaker string
	Text    string
}

// Utterance is a retained turn. Order is the Index of the turn it came from,
// so gaps mark turns that cleaned down to nothing.
type Utterance struct {
	Order     int    `json:"order"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	CleanText string `json:"clean_text"`
}

type SpeakerCount struct {
	Speaker string `json:"speaker"`
	Count   int    `json:"count"`
}

// SpeakerTally is ordered by descending count; equal counts keep the order
// in which the speakers first appeared.
type SpeakerTally []SpeakerCount

// Count returns the tally for speaker, or 0.
func (t SpeakerTally) Count(speaker string) int {
	for _, c := range t {
		if c.Speaker == speaker {
			return c.Count
		}
	}
	return 0
}

func (t SpeakerTally) Speakers() []string {
	out := make([]string, 0, len(t))
	for _, c := range t {
		out = append(out, c.Speaker)
	}
	return out
}

// Top returns at most n speakers with the highest counts.
func (t SpeakerTally) Top(n int) []string {
	s := t.Speakers()
	if n < len(s) {
		s = s[:n]
	}
	return s
}
