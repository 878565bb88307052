// Package hnslog configures the engine-wide structured logger and provides
// prefixed and request-scoped entries for the components that log (the
// retrying signer and the metrics bootstrap). The decoder, projectors and
// composer do not log.
package hnslog

import (
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// FormatType selects the rendering of log lines.
type FormatType int

const (
	FormatTypeText FormatType = iota
	FormatTypeJSON
)

func (f FormatType) String() string {
	switch f {
	case FormatTypeJSON:
		return "json"
	default:
		return "text"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for FormatType.
func (f *FormatType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	switch strings.ToLower(s) {
	case "", "text":
		*f = FormatTypeText
	case "json":
		*f = FormatTypeJSON
	default:
		return errors.New("unknown log format: " + s)
	}

	return nil
}

// Level wraps logrus.Level so configuration files can name it by string.
type Level logrus.Level

func (l Level) String() string {
	return logrus.Level(l).String()
}

// UnmarshalYAML implements yaml.Unmarshaler for Level.
func (l *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	parsed, err := logrus.ParseLevel(s)
	if err != nil {
		return err
	}

	*l = Level(parsed)

	return nil
}

// Config controls the global logger's verbosity and rendering. Level and
// Format are named types over non-string kinds, which creasty/defaults
// cannot populate from a struct tag, so defaults are applied explicitly via
// DefaultConfig rather than `default:"..."` tags.
type Config struct {
	Level     Level      `yaml:"level"`
	Format    FormatType `yaml:"format"`
	Timestamp bool       `yaml:"timestamp" default:"true"`
}

// DefaultConfig returns the logger configuration applied at package init.
func DefaultConfig() Config {
	return Config{Level: Level(logrus.InfoLevel), Format: FormatTypeText, Timestamp: true}
}

// nolint:gochecknoglobals
var logger *logrus.Logger

// nolint:gochecknoinits
func init() {
	logger = logrus.New()

	Configure(DefaultConfig())
}

// Log returns the global logger instance.
func Log() *logrus.Logger {
	return logger
}

// PrefixedLog returns the global logger tagged with a component prefix,
// e.g. "decode", "compose", "root".
func PrefixedLog(prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}

// EscapeInput strips line breaks from attacker-controlled strings (query
// names, decoded text records) before they reach a log line.
func EscapeInput(input string) string {
	result := strings.ReplaceAll(input, "\n", "")

	return strings.ReplaceAll(result, "\r", "")
}

// Configure applies a Config to the global logger.
func Configure(lc Config) {
	logger.SetLevel(logrus.Level(lc.Level))

	var formatter logrus.Formatter

	switch lc.Format {
	case FormatTypeJSON:
		formatter = &logrus.JSONFormatter{}
	default:
		textFormatter := &prefixed.TextFormatter{
			TimestampFormat:  "2006-01-02 15:04:05",
			FullTimestamp:    true,
			ForceFormatting:  true,
			QuoteEmptyFields: true,
			DisableTimestamp: !lc.Timestamp,
		}
		textFormatter.SetColorScheme(&prefixed.ColorScheme{
			PrefixStyle:    "blue+b",
			TimestampStyle: "white+h",
		})

		formatter = textFormatter
	}

	logger.SetFormatter(formatter)
}

// Silence redirects the logger to discard all output; used by tests.
func Silence() {
	logger.Out = io.Discard
}
