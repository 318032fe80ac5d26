package main

import (
	"fmt"
	"os"

	"github.com/cholcombe973/charms.gluster/glustertopo/cmd"
)

func main() {
	cmd.RootCmd.SilenceErrors = true

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitCode(err))
	}
}
