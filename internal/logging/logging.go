// Package logging builds the shared logrus logger for the CLI tools.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger with the level taken from TWEETSIFT_LOG_LEVEL
// (default info). Output is plain text; these are operator-facing batch
// tools, not services.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(os.Getenv("TWEETSIFT_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewWithTool returns a logger tagged with the tool name.
func NewWithTool(tool string) *logrus.Logger {
	logger := New()
	logger.AddHook(&toolHook{tool: tool})
	return logger
}

type toolHook struct {
	tool string
}

func (h *toolHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *toolHook) Fire(e *logrus.Entry) error {
	e.Data["tool"] = h.tool
	return nil
}
