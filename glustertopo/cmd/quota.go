package cmd

import (
	"strconv"

	"github.com/cholcombe973/charms.gluster/pkg/size"

	"github.com/spf13/cobra"
)

const (
	helpQuotaCmd     = "Gluster quota inspection"
	helpQuotaListCmd = "list the usage limits of a volume"
)

var flagQuotaBytes bool

func init() {
	quotaListCmd.Flags().BoolVar(&flagQuotaBytes, "bytes", false, "Show sizes in bytes")
	quotaCmd.AddCommand(quotaListCmd)
	RootCmd.AddCommand(quotaCmd)
}

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: helpQuotaCmd,
}

var quotaListCmd = &cobra.Command{
	Use:   "list <VOLNAME>",
	Short: helpQuotaListCmd,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTopology()
		if err != nil {
			return failure("Error getting quota list", err)
		}
		quotas, err := t.QuotaList(cmd.Context(), args[0])
		if err != nil {
			return failure("Error getting quota list", err)
		}
		if flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), quotas)
		}
		table := newTable(cmd, "Path", "Hard-limit", "Soft-limit", "Used", "Available",
			"Soft-limit exceeded?", "Hard-limit exceeded?")
		for _, q := range quotas {
			table.Append([]string{
				q.Path,
				formatSize(q.HardLimit),
				strconv.FormatFloat(q.SoftLimitPercent, 'f', -1, 64) + "%(" + formatSize(q.SoftLimit) + ")",
				formatSize(q.Used),
				formatSize(q.Available),
				formatBoolYesNo(q.SoftLimitExceeded),
				formatBoolYesNo(q.HardLimitExceeded),
			})
		}
		table.Render()
		return nil
	},
}

func formatSize(b uint64) string {
	if flagQuotaBytes {
		return strconv.FormatUint(b, 10)
	}
	return size.Size(b).String()
}
