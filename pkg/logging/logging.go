// Package logging sets up the logrus standard logger for glustertopo and the
// packages it drives.
package logging

import (
	"io"
	stdlog "log"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// DirFlag is the common logging flag to be used to set log directory
	DirFlag = "logdir"
	// DirHelp is the help message for DirFlag
	DirHelp = "Directory to store log files"

	// FileFlag is the common logging flag to be used to set log file name
	FileFlag = "logfile"
	// FileHelp is the help message for FileFlag
	FileHelp = "Name for log file, or stdout/stderr"

	// LevelFlag is the common logging flag to be used to set log level
	LevelFlag = "loglevel"
	// LevelHelp is the help message for LevelFlag
	LevelHelp = "Severity of messages to be logged"

	// SourceFlag enables the source location of every log entry
	SourceFlag = "logsource"
	// SourceHelp is the help message for SourceFlag
	SourceHelp = "Add the source file and line to every log entry"

	// DefaultLevel is used when no level is configured
	DefaultLevel = "info"
	// DefaultFile logs to stderr so that command output stays parseable
	DefaultFile = "stderr"

	// YY-MM-DD HH:MM:SS.SSSSSS
	timestampFormat = "2006-01-02 15:04:05.000000"
)

var (
	logWriter io.WriteCloser
	hooked    bool
)

func openLogFile(filepath string) (io.WriteCloser, error) {
	return os.OpenFile(filepath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
}

func setLogOutput(w io.Writer) {
	log.SetOutput(w)
	stdlog.SetOutput(log.StandardLogger().Writer())
}

// Init configures the standard logrus logger. It may be called more than
// once; a log file opened by an earlier call is closed.
func Init(logdir, logFileName, logLevel string, withSource bool) error {
	if withSource && !hooked {
		log.AddHook(SourceLocationHook{})
		hooked = true
	}

	Close()

	if logLevel == "" {
		logLevel = DefaultLevel
	}
	l, err := log.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		setLogOutput(os.Stderr)
		log.WithError(err).Debug("failed to parse log level")
		return err
	}
	log.SetLevel(l)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat})

	switch strings.ToLower(logFileName) {
	case "", "-", "stderr":
		setLogOutput(os.Stderr)
	case "stdout":
		setLogOutput(os.Stdout)
	default:
		logFilePath := path.Join(logdir, logFileName)
		logFile, err := openLogFile(logFilePath)
		if err != nil {
			setLogOutput(os.Stderr)
			log.WithError(err).WithField("path", logFilePath).Debug("failed to open log file")
			return err
		}
		setLogOutput(logFile)
		logWriter = logFile
	}
	return nil
}

// Close closes the log file opened by Init, if any.
func Close() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}
