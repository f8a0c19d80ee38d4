package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Bootstrap is
// called so that packages and tests never hit a nil logger.
var Log = logrus.New()

// Bootstrap configures the shared logger with the given level name.
// Unknown levels fall back to info.
func Bootstrap(level string) {
	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		},
		Level:    logrus.InfoLevel,
		ExitFunc: os.Exit,
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("unknown log level %q, using info", level)
		return
	}
	Log.SetLevel(parsed)
	Log.SetReportCaller(parsed >= logrus.DebugLevel)
}

// Silence replaces the shared logger with one that discards output
func Silence() {
	Log = logrus.New()
	Log.SetOutput(io.Discard)
}
