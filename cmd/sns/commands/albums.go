package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navbryce/daily-sns/viewmodels"
)

func albumsCmd() *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "albums",
		Short: "Print every user's album",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodels.NewAlbumViewModel(cli.dataService, cli.viewModelOptions(cmd)...)
			defer vm.Close()

			vm.FetchAlbums().Wait()
			state := vm.Get()
			if err := stateError(state.ErrorMessage); err != nil {
				return err
			}
			if owner == "" {
				return printJSON(cmd.OutOrStdout(), state.Albums)
			}

			for _, album := range state.Albums {
				if album.UserId == owner {
					vm.SelectAlbum(album)
					return printJSON(cmd.OutOrStdout(), vm.Get().SelectedAlbum)
				}
			}
			return fmt.Errorf("no album for user %q", owner)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "only print the album of this user id")
	return cmd
}
