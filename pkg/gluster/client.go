// Package gluster drives the gluster command line tool and interprets its
// replies through pkg/cliout.
package gluster

import (
	"context"
	stderrors "errors"
	"net"
	"strings"

	"github.com/cholcombe973/charms.gluster/pkg/cliout"
	"github.com/cholcombe973/charms.gluster/pkg/errors"
	"github.com/cholcombe973/charms.gluster/pkg/metrics"
	"github.com/cholcombe973/charms.gluster/pkg/resolver"
	"github.com/cholcombe973/charms.gluster/pkg/utils"

	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultBinary is the gluster CLI looked up in $PATH
const DefaultBinary = "gluster"

// Config selects how a Client invokes gluster.
type Config struct {
	// Binary is the gluster executable, DefaultBinary when empty
	Binary string
	// Format is the reply form requested from gluster
	Format cliout.Format
	// Sudo runs every command through sudo
	Sudo bool
}

// Client runs gluster commands. It keeps no state between calls and is safe
// for concurrent use.
type Client struct {
	cfg      Config
	runner   Runner
	resolver cliout.Resolver
	localIP  func() (net.IP, error)
}

// NewClient returns a Client running commands through runner and resolving
// hostnames with r. Nil collaborators select ExecRunner and the system
// resolver.
func NewClient(cfg Config, runner Runner, r cliout.Resolver) *Client {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if r == nil {
		r = resolver.New(resolver.DefaultTimeout)
	}
	return &Client{
		cfg:      cfg,
		runner:   runner,
		resolver: r,
		localIP:  utils.GetLocalIP,
	}
}

// Format returns the reply form the client requests
func (c *Client) Format() cliout.Format {
	return c.cfg.Format
}

// exec runs one gluster command. Output of a failed command is discarded.
func (c *Client) exec(ctx context.Context, scriptMode bool, args ...string) ([]byte, error) {
	label := commandLabel(args)
	out, err := c.runner.Run(ctx, c.cfg.Binary, args, c.cfg.Sudo, scriptMode)
	if err != nil {
		metrics.Commands.WithLabelValues(label, "error").Inc()
		cmdErr := &errors.CommandError{
			Command:    c.cfg.Binary,
			Args:       args,
			ExitStatus: -1,
			Err:        err,
		}
		var execErr *utils.ExecuteCommandError
		if stderrors.As(err, &execErr) {
			cmdErr.ExitStatus = execErr.ExitStatus
			cmdErr.Stderr = execErr.Errstr
		}
		log.WithError(err).WithFields(log.Fields{
			"command": label,
			"args":    args,
		}).Error("gluster command failed")
		return nil, cmdErr
	}

	metrics.Commands.WithLabelValues(label, "ok").Inc()
	return out, nil
}

// query runs a listing command, asking for XML when configured to.
func (c *Client) query(ctx context.Context, args ...string) ([]byte, error) {
	if c.cfg.Format == cliout.FormatXML {
		args = append(args, "--xml")
	}
	return c.exec(ctx, false, args...)
}

// parser returns a Parser matching bricks against the current pool.
func (c *Client) parser(ctx context.Context) (*cliout.Parser, error) {
	peers, err := c.PeerList(ctx)
	if err != nil {
		return nil, err
	}
	return cliout.New(c.resolver, cliout.PeerTable(peers)), nil
}

// commandLabel names a command by its first two words, e.g. "volume info".
func commandLabel(args []string) string {
	n := 2
	if len(args) < n {
		n = len(args)
	}
	return strings.Join(args[:n], " ")
}

func parseErr(err error, what string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, "unable to parse %s output", what)
}
