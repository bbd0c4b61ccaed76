package corpus

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(&buf, []Record{
		{Group: "SLI", Age: 5, Gender: "m", Subject: "413", Filename: "gillam/SLI/5m/413.cha"},
	})
	require.NoError(t, err)
	assert.Equal(t, "group,age,gender,subject,filename\nSLI,5,m,413,gillam/SLI/5m/413.cha\n", buf.String())
}

func TestReadRecords(t *testing.T) {
	in := "subject,filename,group,age,gender,extra\n413,a.cha,SLI,5,m,x\n"

	recs, err := ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Record{{Group: "SLI", Age: 5, Gender: "m", Subject: "413", Filename: "a.cha"}}, recs)
}

func TestReadRecordsErrors(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("group,age\nSLI,5\n"))
	assert.ErrorContains(t, err, "missing column")

	_, err = ReadRecords(strings.NewReader("group,age,gender,subject,filename\nSLI,five,m,1,a.cha\n"))
	assert.ErrorContains(t, err, "row 2")

	recs, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}
