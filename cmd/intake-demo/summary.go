package main

import (
	"os"

	"github.com/spf13/cobra"

	"talentintel/intake-gateway/internal/demo"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <session-id>",
		Short: "Print the live summary of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := demo.NewClient(opts.gateway).Summary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			demo.NewFormatter(os.Stdout).Summary(summary)
			return nil
		},
	}
}
