package orchestrator

import (
	"time"

	"github.com/maastricht-university/chaprep/transcript"
)

// FileCensus is the speaker tally of one transcript.
type FileCensus struct {
	File    string                  `json:"file"`
	Subject string                  `json:"subject"`
	Tally   transcript.SpeakerTally `json:"speakers"`
}

// FileExtract summarises the utterances written for one transcript.
type FileExtract struct {
	File       string `json:"file"`
	Subject    string `json:"subject"`
	Group      string `json:"group,omitempty"`
	Output     string `json:"output"`
	Utterances int    `json:"utterances"`
}

// SplitResult locates the files written by Pipeline.Split.
type SplitResult struct {
	SessionID string
	Dir       string
	Manifest  Manifest
}

type Manifest struct {
	SessionID   string            `json:"session_id"`
	Corpus      string            `json:"corpus"`
	GeneratedAt time.Time         `json:"generated_at"`
	Seed        int64             `json:"seed"`
	Counts      map[string]int    `json:"counts"`
	Files       map[string]string `json:"files"`
}

type BatchResult struct {
	SessionID string        `json:"session_id"`
	Split     string        `json:"split"`
	Speakers  []string      `json:"speakers"`
	Files     []FileExtract `json:"files"`
}
