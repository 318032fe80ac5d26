package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/cholcombe973/charms.gluster/pkg/api"

	"github.com/spf13/cobra"
)

const (
	helpVolumeCmd       = "Gluster volume inspection"
	helpVolumeListCmd   = "list the names of all volumes"
	helpVolumeInfoCmd   = "get information about gluster volumes"
	helpVolumeStatusCmd = "get status of the bricks of a volume"
)

func init() {
	volumeCmd.AddCommand(volumeListCmd)
	volumeCmd.AddCommand(volumeInfoCmd)
	volumeCmd.AddCommand(volumeStatusCmd)
	RootCmd.AddCommand(volumeCmd)
}

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: helpVolumeCmd,
}

var volumeListCmd = &cobra.Command{
	Use:   "list",
	Short: helpVolumeListCmd,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTopology()
		if err != nil {
			return failure("Error getting volume list", err)
		}
		names, err := t.VolumeList(cmd.Context())
		if err != nil {
			return failure("Error getting volume list", err)
		}
		if len(names) == 0 && flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), []string{})
		}
		if flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), names)
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No volumes present in cluster")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var volumeInfoCmd = &cobra.Command{
	Use:   "info [<VOLNAME>]",
	Short: helpVolumeInfoCmd,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		volname := ""
		if len(args) > 0 {
			volname = args[0]
		}
		t, err := newTopology()
		if err != nil {
			return failure("Error getting volume info", err)
		}
		vols, err := t.VolumeInfo(cmd.Context(), volname)
		if err != nil {
			return failure("Error getting volume info", err)
		}
		if flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), vols)
		}
		for _, vol := range vols {
			volumeInfoDisplay(cmd.OutOrStdout(), vol)
		}
		return nil
	},
}

var volumeStatusCmd = &cobra.Command{
	Use:   "status <VOLNAME>",
	Short: helpVolumeStatusCmd,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTopology()
		if err != nil {
			return failure("Error getting volume status", err)
		}
		statuses, err := t.VolumeStatus(cmd.Context(), args[0])
		if err != nil {
			return failure("Error getting volume status", err)
		}
		if flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), statuses)
		}
		table := newTable(cmd, "Host", "Path", "Peer ID", "Online", "TCP Port", "RDMA Port", "Pid")
		for _, s := range statuses {
			table.Append([]string{s.Brick.Peer.Address, s.Brick.Path, s.Brick.Peer.ID.String(),
				formatBoolYesNo(s.Online), formatPort(s.TCPPort), formatPort(s.RDMAPort), formatPID(s.Pid)})
		}
		table.Render()
		return nil
	},
}

func volumeInfoDisplayNumbricks(w io.Writer, vol api.Volume) {
	numBricks := len(vol.Bricks)
	switch {
	case vol.Type.IsDispersed() && vol.DisperseCount > 0:
		fmt.Fprintf(w, "Number of Bricks: %d x (%d + %d) = %d\n", numBricks/vol.DisperseCount,
			vol.DisperseCount-vol.RedundancyCount, vol.RedundancyCount, numBricks)
	case vol.ArbiterCount > 0 && vol.ReplicaCount > 1:
		fmt.Fprintf(w, "Number of Bricks: %d x (%d + %d) = %d\n", numBricks/vol.ReplicaCount,
			vol.ReplicaCount-vol.ArbiterCount, vol.ArbiterCount, numBricks)
	case vol.StripeCount > 1 && vol.ReplicaCount > 1:
		fmt.Fprintf(w, "Number of Bricks: %d x %d x %d = %d\n", numBricks/(vol.StripeCount*vol.ReplicaCount),
			vol.StripeCount, vol.ReplicaCount, numBricks)
	case vol.ReplicaCount > 1:
		fmt.Fprintf(w, "Number of Bricks: %d x %d = %d\n", numBricks/vol.ReplicaCount, vol.ReplicaCount, numBricks)
	case vol.StripeCount > 1:
		fmt.Fprintf(w, "Number of Bricks: %d x %d = %d\n", numBricks/vol.StripeCount, vol.StripeCount, numBricks)
	default:
		fmt.Fprintln(w, "Number of Bricks:", numBricks)
	}
}

func volumeInfoDisplay(w io.Writer, vol api.Volume) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Volume Name:", vol.Name)
	fmt.Fprintln(w, "Type:", vol.Type)
	fmt.Fprintln(w, "Volume ID:", vol.ID)
	fmt.Fprintln(w, "Status:", vol.Status)
	fmt.Fprintln(w, "Snapshot Count:", vol.SnapshotCount)
	volumeInfoDisplayNumbricks(w, vol)
	fmt.Fprintln(w, "Transport-type:", vol.Transport)
	fmt.Fprintln(w, "Bricks:")
	for i, brick := range vol.Bricks {
		if brick.IsArbiter {
			fmt.Fprintf(w, "Brick%d: %s (arbiter)\n", i+1, brick)
		} else {
			fmt.Fprintf(w, "Brick%d: %s\n", i+1, brick)
		}
	}
	if len(vol.Options) == 0 {
		return
	}
	fmt.Fprintln(w, "Options Reconfigured:")
	keys := make([]string, 0, len(vol.Options))
	for key := range vol.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s: %s\n", key, vol.Options[key])
	}
}
