package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	cfg "github.com/maastricht-university/chaprep/config"
	"github.com/maastricht-university/chaprep/corpus"
	"github.com/maastricht-university/chaprep/transcript"
)

type Pipeline struct {
	cfg *cfg.Root
	log *logrus.Entry
}

func NewPipeline(c *cfg.Root, logger *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: c, log: logger.WithField("pipeline", c.Pipeline.Name)}
}

// Split enumerates the configured corpus, splits it and writes
// <corpus>_{all,train,dev,test}.csv plus manifest.json into a new session
// directory under the outputs path.
func (p *Pipeline) Split(ctx context.Context) (*SplitResult, error) {
	name := p.cfg.Corpus.Name
	log := p.log.WithField("corpus", name)

	recs, err := corpus.Enumerate(p.cfg.Corpus, log)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no transcripts found under %s", filepath.Join(p.cfg.Corpus.Root, name))
	}
	log.WithField("files", len(recs)).Info("corpus enumerated")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	split, err := corpus.StratifiedSplit(recs, p.cfg.Split)
	if err != nil {
		return nil, err
	}

	sid, dir, err := mkSessionDir(p.cfg.Paths.Outputs, "split")
	if err != nil {
		return nil, err
	}
	sets := []struct {
		key  string
		recs []corpus.Record
	}{
		{"all", recs},
		{"train", split.Train},
		{"dev", split.Dev},
		{"test", split.Test},
	}
	manifest := Manifest{
		SessionID:   sid,
		Corpus:      name,
		GeneratedAt: timeNow(),
		Seed:        p.cfg.Split.Seed,
		Counts:      map[string]int{},
		Files:       map[string]string{},
	}
	for _, s := range sets {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", name, s.key))
		if err := corpus.WriteRecordsFile(path, s.recs); err != nil {
			return nil, err
		}
		manifest.Counts[s.key] = len(s.recs)
		manifest.Files[s.key] = path
	}
	if err := writeJSON(filepath.Join(dir, "manifest.json"), manifest); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"train": len(split.Train),
		"dev":   len(split.Dev),
		"test":  len(split.Test),
		"dir":   dir,
	}).Info("split written")
	return &SplitResult{SessionID: sid, Dir: dir, Manifest: manifest}, nil
}

// Census tallies the speakers of every file. Results follow the order of
// files.
func (p *Pipeline) Census(ctx context.Context, files []string) ([]FileCensus, error) {
	out := make([]FileCensus, len(files))
	err := p.forEach(ctx, len(files), func(_ context.Context, i int) error {
		tally, err := transcript.CountSpeakersFile(files[i])
		if err != nil {
			return err
		}
		out[i] = FileCensus{File: files[i], Subject: subjectOf(files[i]), Tally: tally}
		p.log.WithFields(logrus.Fields{"file": files[i], "speakers": tally.Speakers()}).Debug("census")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Extract returns the utterances of speakers in file. With no speakers the
// configured extract.speakers are used.
func (p *Pipeline) Extract(ctx context.Context, file string, speakers []string) ([]transcript.Utterance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	speakers = p.speakers(speakers)
	utts, err := transcript.ExtractUtterancesFile(file, speakers)
	if err != nil {
		return nil, err
	}
	log := p.log.WithFields(logrus.Fields{"file": file, "speakers": speakers})
	if len(utts) == 0 {
		log.Warn("no utterances extracted")
	} else {
		log.WithField("utterances", len(utts)).Debug("extracted")
	}
	return utts, nil
}

// ExtractFile writes the utterances of file to <outputs>/<subject>.csv.
func (p *Pipeline) ExtractFile(ctx context.Context, file string, speakers []string) (*FileExtract, error) {
	out := filepath.Join(p.cfg.Paths.Outputs, subjectOf(file)+".csv")
	res, err := p.extractTo(ctx, file, speakers, out)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ExtractSplit extracts every transcript listed in a split CSV, in
// parallel, into <outputs>/<split>_<timestamp>/<group>/<subject>.csv and
// writes summary.json next to them.
func (p *Pipeline) ExtractSplit(ctx context.Context, splitCSV string, speakers []string) (*BatchResult, error) {
	recs, err := corpus.ReadRecordsFile(splitCSV)
	if err != nil {
		return nil, err
	}
	speakers = p.speakers(speakers)
	name := subjectOf(splitCSV)

	sid, dir, err := mkSessionDir(p.cfg.Paths.Outputs, name)
	if err != nil {
		return nil, err
	}

	results := make([]FileExtract, len(recs))
	err = p.forEach(ctx, len(recs), func(ctx context.Context, i int) error {
		r := recs[i]
		res, err := p.extractTo(ctx, r.Filename, speakers, filepath.Join(dir, r.Group, r.Subject+".csv"))
		if err != nil {
			return err
		}
		res.Subject = r.Subject
		res.Group = r.Group
		results[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{SessionID: sid, Split: splitCSV, Speakers: speakers, Files: results}
	if err := writeJSON(filepath.Join(dir, "summary.json"), batch); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"split": name, "files": len(results), "dir": dir}).Info("batch extracted")
	return batch, nil
}

func (p *Pipeline) extractTo(ctx context.Context, file string, speakers []string, out string) (FileExtract, error) {
	utts, err := p.Extract(ctx, file, speakers)
	if err != nil {
		return FileExtract{}, err
	}
	if err := writeUtterancesFile(out, utts); err != nil {
		return FileExtract{}, fmt.Errorf("write %s: %w", out, err)
	}
	return FileExtract{File: file, Subject: subjectOf(file), Output: out, Utterances: len(utts)}, nil
}
