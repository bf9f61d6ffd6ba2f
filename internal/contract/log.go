package contract

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

// newLogger builds the process logger. Output goes to stderr so stdout stays
// reserved for results.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Log returns the process logger.
func Log() *logrus.Logger {
	return logger
}

// SetLogLevel sets the level of the process logger.
func SetLogLevel(level logrus.Level) {
	logger.SetLevel(level)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	logger.WithError(err).Fatal(msg)
}

// LogWarn logs a warning with its cause.
func LogWarn(msg string, err error) {
	logger.WithError(err).Warn(msg)
}
