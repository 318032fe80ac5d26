package cmd

import (
	"fmt"
	"strconv"

	"github.com/cholcombe973/charms.gluster/pkg/size"

	"github.com/spf13/cobra"
)

const helpSizeCmd = "convert gluster size strings such as 8.2KB or 1TB to bytes"

func init() {
	RootCmd.AddCommand(sizeCmd)
}

type sizeResult struct {
	Input string  `json:"input"`
	Bytes float64 `json:"bytes"`
	Human string  `json:"human"`
}

var sizeCmd = &cobra.Command{
	Use:   "size <SIZE>...",
	Short: helpSizeCmd,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]sizeResult, 0, len(args))
		for _, arg := range args {
			b, err := size.ParseBytes(arg)
			if err != nil {
				return failure("Invalid size "+strconv.Quote(arg), err)
			}
			results = append(results, sizeResult{
				Input: arg,
				Bytes: b,
				Human: size.Size(uint64(b + 0.5)).String(),
			})
		}

		if flagJSONOutput {
			return printJSON(cmd.OutOrStdout(), results)
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Input,
				strconv.FormatFloat(r.Bytes, 'f', -1, 64), r.Human)
		}
		return nil
	},
}
