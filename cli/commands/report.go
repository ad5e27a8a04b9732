package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "report" command
func report(props *CommandProps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report of stored scan results",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := props.Service.GenerateReport(format)

			if err != nil {
				return err
			}

			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no report service configured")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "report format (html, csv, json)")

	return cmd
}
