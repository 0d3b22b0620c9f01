package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/faizmokh/pushups/internal/files"
)

// Params selects the level, format and destination of the logs.
type Params struct {
	Level      string
	File       string
	JSONFormat bool
	// Stderr receives logs when File is empty. Defaults to os.Stderr.
	Stderr io.Writer
}

// Setup configures the standard logrus logger. Stdout is reserved for the
// progress report, so logs go to stderr or a rotated file.
func Setup(params Params) error {
	if params.JSONFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.File == "" {
		out := params.Stderr
		if out == nil {
			out = os.Stderr
		}
		logrus.SetOutput(out)
		return nil
	}

	path, err := files.NormalizePath(params.File)
	if err != nil {
		return err
	}

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
		Compress:   true,
	})
	logrus.Debugf("writing logs to %s", path)
	return nil
}

// GetLevel maps a level name to logrus, falling back to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}
