package orchestrator

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	cfg "github.com/maastricht-university/chaprep/config"
)

// NewLogger builds the process logger from the pipeline section: level
// (logrus names) and format ("text" or "json").
func NewLogger(c cfg.Pipeline, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl := c.LogLvl
	if lvl == "" {
		lvl = "info"
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	switch c.LogFormat {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return logger, nil
}
