package commands

import (
	"github.com/spf13/cobra"

	"github.com/navbryce/daily-sns/app"
	"github.com/navbryce/daily-sns/viewmodels"
)

func feedCmd() *cobra.Command {
	var feedType string
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the following or global feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := app.ParseFeedType(feedType)
			if err != nil {
				return err
			}
			vm := viewmodels.NewFeedViewModel(cli.userId, cli.dataService, cli.viewModelOptions(cmd)...)
			defer vm.Close()

			task := vm.SwitchFeedType(parsed)
			if task == nil {
				task = vm.FetchPosts()
			}
			task.Wait()

			state := vm.Get()
			if err := stateError(state.ErrorMessage); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), state.Posts)
		},
	}
	cmd.Flags().StringVarP(&feedType, "type", "t", string(app.FeedTypeFollowing), "feed type: following or global")
	return cmd
}
