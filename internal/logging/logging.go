package logging

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configure applies level, format and output to the standard logger used by
// the scheduler packages.
//
// level: any level logrus understands (trace, debug, info, warn, error, ...)
// format: "text" (human-readable) or "json" (structured)
func Configure(level, format string, w io.Writer) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	logger := log.StandardLogger()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return nil
}
