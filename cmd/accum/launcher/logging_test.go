package launcher

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_levels(t *testing.T) {
	want := []logrus.Level{
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
	for v, level := range want {
		log, err := newLogger(LoggingConfig{Verbosity: v, Format: "text"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, level, log.GetLevel(), "verbosity %d", v)
	}
}

func TestNewLogger_json(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(LoggingConfig{Verbosity: 3, Format: "json"}, &buf)
	require.NoError(t, err)

	log.WithField("store", "ring").Info("Benchmark finished")
	log.Debug("hidden")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "Benchmark finished", entry["msg"])
	require.Equal(t, "ring", entry["store"])
}

func TestNewLogger_errors(t *testing.T) {
	for _, cfg := range []LoggingConfig{
		{Verbosity: -1, Format: "text"},
		{Verbosity: 6, Format: "text"},
		{Verbosity: 3, Format: "xml"},
	} {
		_, err := newLogger(cfg, &bytes.Buffer{})
		require.ErrorIs(t, err, ErrBadLogging, "%+v", cfg)
	}

	_, err := newLogger(LoggingConfig{Verbosity: 3, SentryDSN: "not a dsn"}, &bytes.Buffer{})
	require.Error(t, err)
}
