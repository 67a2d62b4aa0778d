package commands

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/navbryce/daily-sns/app"
	"github.com/navbryce/daily-sns/model"
)

type overview struct {
	User      *model.User    `json:"user"`
	Following []*model.Post  `json:"following"`
	Albums    []*model.Album `json:"albums"`
}

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Load the current user, following feed and albums concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out overview
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				user, err := cli.dataService.FetchUser(ctx, cli.userId)
				out.User = user
				return err
			})
			g.Go(func() error {
				posts, err := app.FetchFeed(ctx, cli.dataService, cli.userId, app.FeedTypeFollowing)
				out.Following = posts
				return err
			})
			g.Go(func() error {
				albums, err := cli.dataService.FetchAlbums(ctx)
				out.Albums = albums
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
