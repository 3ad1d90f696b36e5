package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slof/internal/prof"
)

// setupProfiling starts the profiles requested by the global flags.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	var p prof.Paths
	var err error
	if p.CPU, err = flags.GetString("cpuprofile"); err != nil {
		return nil, fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if p.Mem, err = flags.GetString("memprofile"); err != nil {
		return nil, fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if p.ExecTrace, err = flags.GetString("exectrace"); err != nil {
		return nil, fmt.Errorf("failed to get exectrace flag: %w", err)
	}

	session, err := prof.Start(p)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "prof: %v\n", err)
		}
	}, nil
}
