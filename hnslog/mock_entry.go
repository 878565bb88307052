package hnslog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewMockEntry returns a logger entry that discards output, for use as the
// component logger in tests that only care about behavior, not log lines.
func NewMockEntry() *logrus.Entry {
	logger := logrus.New()
	logger.Out = io.Discard

	return logrus.NewEntry(logger)
}
