package cmd

import (
	"context"

	"github.com/cholcombe973/charms.gluster/pkg/api"

	"github.com/spf13/cobra"
)

const (
	helpPeerCmd       = "Gluster peer inspection"
	helpPeerStatusCmd = "list status of peers"
	helpPoolCmd       = "Gluster trusted pool inspection"
	helpPoolListCmd   = "list all the nodes in the pool (including localhost)"
)

func init() {
	peerCmd.AddCommand(peerStatusCmd)
	RootCmd.AddCommand(peerCmd)

	poolCmd.AddCommand(poolListCmd)
	RootCmd.AddCommand(poolCmd)
}

var peerCmd = &cobra.Command{
	Use:   "peer",
	Short: helpPeerCmd,
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: helpPoolCmd,
}

var peerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: helpPeerStatusCmd,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return peersHandler(cmd, "Peer status failed", topology.PeerStatus)
	},
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: helpPoolListCmd,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return peersHandler(cmd, "Pool list failed", topology.PeerList)
	},
}

func peersHandler(cmd *cobra.Command, msg string, list func(topology, context.Context) ([]api.Peer, error)) error {
	t, err := newTopology()
	if err != nil {
		return failure(msg, err)
	}
	peers, err := list(t, cmd.Context())
	if err != nil {
		return failure(msg, err)
	}

	if flagJSONOutput {
		return printJSON(cmd.OutOrStdout(), peers)
	}
	table := newTable(cmd, "ID", "Address", "State", "Connected")
	for _, p := range peers {
		table.Append([]string{p.ID.String(), p.Address, p.State.String(), formatBoolYesNo(p.Connected)})
	}
	table.Render()
	return nil
}
