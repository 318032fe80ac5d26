package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cholcombe973/charms.gluster/pkg/errors"

	"github.com/olekukonko/tablewriter"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes of glustertopo, by failure kind
const (
	exitOther      = 1
	exitCommand    = 2
	exitProtocol   = 3
	exitFormat     = 4
	exitResolution = 5
	exitNotFound   = 6
)

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	switch errors.KindOf(err) {
	case errors.KindCommand:
		return exitCommand
	case errors.KindProtocol:
		return exitProtocol
	case errors.KindFormat:
		return exitFormat
	case errors.KindResolution:
		return exitResolution
	case errors.KindNotFound:
		return exitNotFound
	default:
		return exitOther
	}
}

// failure logs err in verbose mode and returns it prefixed with msg
func failure(msg string, err error) error {
	if verbose {
		log.WithFields(log.Fields{
			"error": err.Error(),
			"kind":  errors.KindOf(err),
		}).Error(msg)
	}
	return pkgerrors.Wrap(err, msg)
}

func formatBoolYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// formatPID and formatPort leave absent values blank
func formatPID(pid int) string {
	if pid == 0 {
		return ""
	}
	return strconv.Itoa(pid)
}

func formatPort(port int) string {
	if port == 0 {
		return "N/A"
	}
	return strconv.Itoa(port)
}

func newTable(cmd *cobra.Command, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	return table
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
