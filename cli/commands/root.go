package commands

import (
	"errors"
	"fmt"

	"github.com/efuentes/discover/internal/config"
	"github.com/efuentes/discover/internal/discovery"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf    config.Config
	Service discovery.Service
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var network string
	var host string
	var format string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Probe network hosts for administrative services",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			targets := props.Conf.Discovery.Targets

			switch {
			case network != "":
				targets = []string{network}
			case host != "":
				d, err := props.Service.DiscoverDevice(ctx, host, 1)

				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), d.Status())

				return generateReport(cmd, props, format)
			}

			if len(targets) == 0 {
				return errors.New("no scan targets: provide --network, --host, or configured targets")
			}

			for _, target := range targets {
				devices, err := props.Service.DiscoverNetwork(ctx, target)

				if err != nil {
					return err
				}

				for _, d := range devices {
					fmt.Fprintln(cmd.OutOrStdout(), d.Status())
				}
			}

			return generateReport(cmd, props, format)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.Flags().StringVarP(&network, "network", "n", "", "network to scan in CIDR notation")
	cmd.Flags().StringVar(&host, "host", "", "single host to scan")
	cmd.Flags().StringVarP(&format, "format", "f", "", "also generate a report (html, csv, json)")

	cmd.AddCommand(devices(props))
	cmd.AddCommand(report(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(version())

	return cmd
}

func generateReport(cmd *cobra.Command, props *CommandProps, format string) error {
	if format == "" {
		return nil
	}

	path, err := props.Service.GenerateReport(format)

	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
	}

	return nil
}
