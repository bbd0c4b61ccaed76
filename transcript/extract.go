package transcript

import "errors"

var ErrNoSpeakers = errors.New("transcript: no speaker codes given")

// ExtractUtterances returns the turns of the given speakers, in document
// order, whose FullClean text is longer than one character. Speaker codes
// match the marker exactly, ignoring case.
func ExtractUtterances(text string, speakers []string) ([]Utterance, error) {
	if len(speakers) == 0 {
		return nil, ErrNoSpeakers
	}
	var out []Utterance
	for turn := range Segment(text, AllowList(speakers...)) {
		clean := FullClean(turn.Text)
		if !substantive(clean) {
			continue
		}
		out = append(out, Utterance{
			Order:     turn.Index,
			Speaker:   turn.Speaker,
			Text:      turn.Text,
			CleanText: clean,
		})
	}
	return out, nil
}

// ExtractUtterancesFile reads path and runs ExtractUtterances on it.
func ExtractUtterancesFile(path string, speakers []string) ([]Utterance, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractUtterances(text, speakers)
}
