package orchestrator

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/maastricht-university/chaprep/transcript"
)

func mkSessionDir(outputsRoot, prefix string) (string, string, error) {
	ts := timeNow().Format("20060102-150405")
	sid := prefix + "_" + ts
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteUtterances writes one CSV row per utterance under an
// order,speaker,text,clean_text header.
func WriteUtterances(w io.Writer, utts []transcript.Utterance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"order", "speaker", "text", "clean_text"}); err != nil {
		return err
	}
	for _, u := range utts {
		if err := cw.Write([]string{strconv.Itoa(u.Order), u.Speaker, u.Text, u.CleanText}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCensus writes one file,speaker,count row per tallied speaker.
func WriteCensus(w io.Writer, results []FileCensus) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"file", "speaker", "count"}); err != nil {
		return err
	}
	for _, r := range results {
		for _, c := range r.Tally {
			if err := cw.Write([]string{r.File, c.Speaker, strconv.Itoa(c.Count)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeUtterancesFile(path string, utts []transcript.Utterance) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteUtterances(f, utts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
