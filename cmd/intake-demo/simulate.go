package main

import (
	"os"

	"github.com/spf13/cobra"

	"talentintel/intake-gateway/internal/demo"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var scenarioPath string
	var participant string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a scripted intake meeting and print live updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := demo.DefaultScenario()
			if scenarioPath != "" {
				loaded, err := demo.LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			}
			if participant != "" {
				sc.Participant = participant
			}

			out := demo.NewFormatter(os.Stdout)
			sim := demo.NewSimulator(demo.NewClient(opts.gateway), out)
			if _, err := sim.Run(cmd.Context(), sc); err != nil {
				return err
			}
			out.Success("Demo completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (defaults to the built-in hiring call)")
	cmd.Flags().StringVar(&participant, "participant", "", "override the scenario's participant name")
	return cmd
}
