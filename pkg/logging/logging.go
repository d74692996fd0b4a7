package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Configure applies level, format and an optional rotating log file to logger.
// An unknown level keeps Info and is reported once the formatter is in place.
func Configure(logger *logrus.Logger, level, format, file string) {
	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		})
	}
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.Warnf("Unknown log level %q, falling back to info", level)
		return
	}
	logger.SetLevel(lvl)
}

func New(level, format, file string) *logrus.Logger {
	logger := logrus.New()
	Configure(logger, level, format, file)
	return logger
}
