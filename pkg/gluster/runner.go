package gluster

import (
	"context"

	"github.com/cholcombe973/charms.gluster/pkg/utils"

	log "github.com/sirupsen/logrus"
)

const scriptModeFlag = "--mode=script"

// Runner executes an external command and returns its standard output. A
// command exiting non-zero must be reported as an error.
type Runner interface {
	Run(ctx context.Context, name string, args []string, escalate, scriptMode bool) ([]byte, error)
}

// ExecRunner runs commands on the local host.
type ExecRunner struct{}

// Run executes name with args. escalate prefixes the invocation with sudo;
// scriptMode adds --mode=script so that gluster never waits for a y/n
// confirmation.
func (ExecRunner) Run(ctx context.Context, name string, args []string, escalate, scriptMode bool) ([]byte, error) {
	argv := make([]string, 0, len(args)+2)
	if scriptMode {
		argv = append(argv, scriptModeFlag)
	}
	argv = append(argv, args...)

	if escalate {
		argv = append([]string{name}, argv...)
		name = "sudo"
	}

	log.WithFields(log.Fields{
		"command": name,
		"args":    argv,
	}).Debug("running command")

	return utils.ExecuteCommandOutput(ctx, name, argv...)
}
