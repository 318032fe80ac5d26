package logging

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// SourceField is the field name used for logging source location.
	SourceField = "source"
	moduleRepo  = "github.com/cholcombe973/charms.gluster"
)

// SourceLocationHook adds the file, function and line of the caller inside
// this module to every entry.
type SourceLocationHook struct{}

// Levels returns all logrus levels.
func (hook SourceLocationHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire adds file name, function name and line number to the log entry.
func (hook SourceLocationHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(5, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if fromModule(frame) {
			entry.Data[SourceField] = fmt.Sprintf("%s:%s:%d", path.Base(frame.File), path.Base(frame.Function), frame.Line)
			break
		}
		if !more {
			break
		}
	}

	return nil
}

func fromModule(frame runtime.Frame) bool {
	if !strings.HasPrefix(frame.Function, moduleRepo) {
		return false
	}
	// the hook itself and logrus wrappers are never the interesting caller
	return !strings.HasPrefix(frame.Function, moduleRepo+"/pkg/logging.")
}
