package transcript

import "sort"

// CountSpeakers tallies, per speaker code, the turns whose CensusClean text
// is longer than one character. Any capitalized code is counted, so the
// result shows who actually talks in a file before an allow-list is chosen.
func CountSpeakers(text string) SpeakerTally {
	counts := map[string]int{}
	var seen []string
	for turn := range Segment(text, Capitalized()) {
		if !substantive(CensusClean(turn.Text)) {
			continue
		}
		if _, ok := counts[turn.Speaker]; !ok {
			seen = append(seen, turn.Speaker)
		}
		counts[turn.Speaker]++
	}

	tally := make(SpeakerTally, 0, len(seen))
	for _, s := range seen {
		tally = append(tally, SpeakerCount{Speaker: s, Count: counts[s]})
	}
	sort.SliceStable(tally, func(i, j int) bool { return tally[i].Count > tally[j].Count })
	return tally
}

// CountSpeakersFile reads path and runs CountSpeakers on it.
func CountSpeakersFile(path string) (SpeakerTally, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CountSpeakers(text), nil
}
