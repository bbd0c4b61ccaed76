package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `@UTF8
@Begin
@Languages:	eng
@Participants:	CHI Target_Child, EXA Investigator
*EXA:	tell me a story . 0_1500
*CHI:	once there was a dog [/] a dog .
%mor:	adv|once pro:exist|there
*CHI:	xxx .
*EXA:	mhm .
*CHI:	and he &=laughs ran
	away .
*INV:	nice .
@End
`

func TestExtractUtterancesBasic(t *testing.T) {
	text := "*CHI: hello there .\n*MOT: hi sweetie !\n%com: note\n*CHI: bye .\n"

	got, err := ExtractUtterances(text, []string{"CHI", "MOT"})
	require.NoError(t, err)
	assert.Equal(t, []Utterance{
		{Order: 1, Speaker: "CHI", Text: "hello there .", CleanText: "hello there ."},
		{Order: 2, Speaker: "MOT", Text: "hi sweetie !", CleanText: "hi sweetie !"},
		{Order: 3, Speaker: "CHI", Text: "bye .", CleanText: "bye ."},
	}, got)
}

func TestExtractUtterancesMetadataTermination(t *testing.T) {
	got, err := ExtractUtterances("*CHI: the cat .\n%com: points at picture\n", []string{"CHI"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotContains(t, got[0].Text, "points")
	assert.Equal(t, "the cat .", got[0].Text)
}

func TestExtractUtterancesFiltering(t *testing.T) {
	got, err := ExtractUtterances("*CHI: xxx .\n*MOT: ok .\n", []string{"CHI", "MOT"})
	require.NoError(t, err)
	assert.Equal(t, []Utterance{{Order: 2, Speaker: "MOT", Text: "ok .", CleanText: "ok ."}}, got)
}

func TestExtractUtterancesSample(t *testing.T) {
	got, err := ExtractUtterances(sample, []string{"chi", "exa"})
	require.NoError(t, err)

	assert.Equal(t, []Utterance{
		{Order: 1, Speaker: "EXA", Text: "tell me a story . 0_1500", CleanText: "tell me a story ."},
		{Order: 2, Speaker: "CHI", Text: "once there was a dog [/] a dog .", CleanText: "once there was a dog a dog ."},
		{Order: 4, Speaker: "EXA", Text: "mhm .", CleanText: "mhm ."},
		{Order: 5, Speaker: "CHI", Text: "and he &=laughs ran\n\taway .", CleanText: "and he laughs ran away ."},
	}, got)

	for i, u := range got {
		assert.Greater(t, len([]rune(u.CleanText)), 1)
		if i > 0 {
			assert.Greater(t, u.Order, got[i-1].Order)
		}
	}
}

func TestExtractUtterancesNoMatch(t *testing.T) {
	got, err := ExtractUtterances(sample, []string{"MOT"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractUtterancesNoSpeakers(t *testing.T) {
	_, err := ExtractUtterances(sample, nil)
	assert.ErrorIs(t, err, ErrNoSpeakers)
}

func TestExtractUtterancesDeterministic(t *testing.T) {
	a, err := ExtractUtterances(sample, []string{"CHI", "EXA"})
	require.NoError(t, err)
	b, err := ExtractUtterances(sample, []string{"CHI", "EXA"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCountSpeakers(t *testing.T) {
	tally := CountSpeakers(sample)

	assert.Equal(t, SpeakerTally{
		{Speaker: "EXA", Count: 2},
		{Speaker: "CHI", Count: 2},
		{Speaker: "INV", Count: 1},
	}, tally)
	assert.Equal(t, []string{"EXA", "CHI"}, tally.Top(2))
	assert.Equal(t, 0, tally.Count("MOT"))
}

func TestCountSpeakersTieKeepsFirstAppearance(t *testing.T) {
	tally := CountSpeakers("*MOT: hi there .\n*CHI: hello .\n*CHI: more .\n*FAT: ok now .\n")
	assert.Equal(t, []string{"CHI", "MOT", "FAT"}, tally.Speakers())
}

func TestCountSpeakersEmpty(t *testing.T) {
	assert.Empty(t, CountSpeakers(""))
	assert.Empty(t, CountSpeakers("@Begin\n@End\n"))
}

func TestCensusSeesSpeakersOutsideAllowList(t *testing.T) {
	tally := CountSpeakers(sample)
	assert.Equal(t, 1, tally.Count("INV"))

	utts, err := ExtractUtterances(sample, []string{"CHI", "EXA"})
	require.NoError(t, err)
	for _, u := range utts {
		assert.NotEqual(t, "INV", u.Speaker)
	}
}

func TestFileEntryPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "413.cha")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	tally, err := CountSpeakersFile(path)
	require.NoError(t, err)
	assert.Equal(t, CountSpeakers(sample), tally)

	utts, err := ExtractUtterancesFile(path, []string{"CHI"})
	require.NoError(t, err)
	assert.Len(t, utts, 2)

	_, err = ExtractUtterancesFile(filepath.Join(t.TempDir(), "missing.cha"), []string{"CHI"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
