package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultGateway = "http://localhost:8080"

type rootOptions struct {
	gateway string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "intake-demo",
		Short:         "Drive a simulated intake meeting against an intake gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	gateway := os.Getenv("INTAKE_GATEWAY_URL")
	if gateway == "" {
		gateway = defaultGateway
	}
	rootCmd.PersistentFlags().StringVar(&opts.gateway, "gateway", gateway, "base URL of the intake gateway")

	rootCmd.AddCommand(newSimulateCmd(opts))
	rootCmd.AddCommand(newSummaryCmd(opts))
	return rootCmd
}
