package orchestrator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maastricht-university/chaprep/transcript"
)

func TestWriteUtterances(t *testing.T) {
	var buf bytes.Buffer
	err := WriteUtterances(&buf, []transcript.Utterance{
		{Order: 3, Speaker: "CHI", Text: "and he ran\n\taway .", CleanText: "and he ran away ."},
	})
	require.NoError(t, err)
	assert.Equal(t, "order,speaker,text,clean_text\n3,CHI,\"and he ran\n\taway .\",and he ran away .\n", buf.String())
}

func TestWriteCensus(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCensus(&buf, []FileCensus{{
		File:  "413.cha",
		Tally: transcript.SpeakerTally{{Speaker: "CHI", Count: 12}, {Speaker: "EXA", Count: 9}},
	}})
	require.NoError(t, err)
	assert.Equal(t, "file,speaker,count\n413.cha,CHI,12\n413.cha,EXA,9\n", buf.String())
}
