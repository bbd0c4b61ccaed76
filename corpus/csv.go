package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var header = []string{"group", "age", "gender", "subject", "filename"}

// WriteRecords writes recs as CSV with a header row.
func WriteRecords(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{r.Group, strconv.Itoa(r.Age), r.Gender, r.Subject, r.Filename}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteRecordsFile(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRecords(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadRecords parses a CSV written by WriteRecords. Columns are located by
// header name, so extra columns and reordering are tolerated.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	head, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range head {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range header {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("read header: missing column %q", name)
		}
	}

	var out []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		get := func(name string) string {
			if i := col[name]; i < len(row) {
				return row[i]
			}
			return ""
		}
		age, err := strconv.Atoi(get("age"))
		if err != nil {
			return nil, fmt.Errorf("row %d: age %q: %w", line, get("age"), err)
		}
		out = append(out, Record{
			Group:    get("group"),
			Age:      age,
			Gender:   get("gender"),
			Subject:  get("subject"),
			Filename: get("filename"),
		})
	}
	return out, nil
}

func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}
