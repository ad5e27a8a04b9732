package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "devices" command
func devices(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Print results of the most recent scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := props.Service.GetDevices()

			if err != nil {
				return err
			}

			for _, d := range found {
				fmt.Fprintln(cmd.OutOrStdout(), d.Status())
			}

			return nil
		},
	}

	return cmd
}
