// Package corpus lists the transcripts of a grouped corpus and splits them
// into stratified train/dev/test sets.
//
// A corpus lives under <root>/<name>/<group>/<subgroup>/, where a subgroup
// such as "5m" or "10f" encodes the speakers' age in years and gender.
package corpus

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrInvalidSubgroup = errors.New("corpus: invalid subgroup")

// Layout describes where a corpus lives and how it is grouped.
type Layout struct {
	Name      string   `mapstructure:"name" yaml:"name"`
	Root      string   `mapstructure:"root" yaml:"root"`
	Groups    []string `mapstructure:"groups" yaml:"groups"`
	Subgroups []string `mapstructure:"subgroups" yaml:"subgroups"`
	Pattern   string   `mapstructure:"pattern" yaml:"pattern"`
}

// Record is one transcript of the corpus.
type Record struct {
	Group    string `json:"group"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Subject  string `json:"subject"`
	Filename string `json:"filename"`
}

type Subgroup struct {
	Age    int
	Gender string
}

// ParseSubgroup splits "10f" into age 10 and gender "f".
func ParseSubgroup(s string) (Subgroup, error) {
	if len(s) < 2 {
		return Subgroup{}, fmt.Errorf("%w: %q", ErrInvalidSubgroup, s)
	}
	age, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || age < 0 {
		return Subgroup{}, fmt.Errorf("%w: %q", ErrInvalidSubgroup, s)
	}
	gender := s[len(s)-1:]
	if strings.ContainsAny(gender, "0123456789") {
		return Subgroup{}, fmt.Errorf("%w: %q", ErrInvalidSubgroup, s)
	}
	return Subgroup{Age: age, Gender: gender}, nil
}

func (l Layout) Validate() error {
	if l.Name == "" {
		return errors.New("corpus: name is required")
	}
	if len(l.Groups) == 0 {
		return errors.New("corpus: at least one group is required")
	}
	for _, s := range l.Subgroups {
		if _, err := ParseSubgroup(s); err != nil {
			return err
		}
	}
	if _, err := filepath.Match(l.pattern(), ""); err != nil {
		return fmt.Errorf("corpus: pattern %q: %w", l.Pattern, err)
	}
	return nil
}

// Dir is the directory holding the transcripts of one group and subgroup.
func (l Layout) Dir(group, subgroup string) string {
	return filepath.Join(l.Root, l.Name, group, subgroup)
}

func (l Layout) pattern() string {
	if l.Pattern == "" {
		return "*.cha"
	}
	return l.Pattern
}

// Enumerate lists every transcript of the layout, group by group in the
// configured order, files sorted by name within a subgroup. A subgroup
// without files is logged and skipped.
func Enumerate(l Layout, log logrus.FieldLogger) ([]Record, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var out []Record
	for _, group := range l.Groups {
		seen := map[string]bool{}
		for _, sub := range l.Subgroups {
			if seen[sub] {
				log.WithFields(logrus.Fields{"group": group, "subgroup": sub}).Debug("duplicate subgroup skipped")
				continue
			}
			seen[sub] = true

			sg, err := ParseSubgroup(sub)
			if err != nil {
				return nil, err
			}
			files, err := filepath.Glob(filepath.Join(l.Dir(group, sub), l.pattern()))
			if err != nil {
				return nil, err
			}
			if len(files) == 0 {
				log.WithFields(logrus.Fields{"group": group, "subgroup": sub}).Warn("no files found")
				continue
			}
			sort.Strings(files)
			for _, f := range files {
				out = append(out, Record{
					Group:    group,
					Age:      sg.Age,
					Gender:   sg.Gender,
					Subject:  subjectOf(f),
					Filename: f,
				})
			}
		}
	}
	return out, nil
}

func subjectOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SortRecords orders records by group, age, gender and subject.
func SortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Age != b.Age {
			return a.Age < b.Age
		}
		if a.Gender != b.Gender {
			return a.Gender < b.Gender
		}
		return a.Subject < b.Subject
	})
}
