package launcher

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

var ErrBadLogging = errors.New("invalid logging config")

// newLogger builds the process logger from cfg. Entries at error level and
// above are also shipped to Sentry when a DSN is configured.
func newLogger(cfg LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return nil, fmt.Errorf("%w: verbosity %d out of [0, 5]", ErrBadLogging, cfg.Verbosity)
	}

	log := logrus.New()
	log.Out = out
	// 0=fatal ... 5=trace, shifted by one past logrus.PanicLevel.
	log.SetLevel(logrus.Level(cfg.Verbosity + 1))

	switch cfg.Format {
	case "text", "":
		log.Formatter = &logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		}
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrBadLogging, cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		hook.Timeout = 5 * time.Second
		log.AddHook(hook)
	}
	return log, nil
}
