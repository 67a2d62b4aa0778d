package commands

import (
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Print a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := cli.dataService.FetchUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}
