package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/navbryce/daily-sns/viewmodels"
)

func composeCmd() *cobra.Command {
	var (
		screenshots []string
		comments    []string
		remove      []int
		submit      bool
	)
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a post from screenshots and comments",
		Long: "Screenshots and comments are added alternately in the order given.\n" +
			"--remove soft deletes items by index before the post is built.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vm := viewmodels.NewPostCreationViewModel(cli.dataService, cli.viewModelOptions(cmd)...)
			defer vm.Close()

			for i := 0; i < len(screenshots) || i < len(comments); i++ {
				if i < len(screenshots) {
					vm.AddScreenshot(screenshots[i])
				}
				if i < len(comments) {
					vm.AddComment(comments[i])
				}
			}
			for _, index := range remove {
				vm.RemoveItemAt(index)
			}

			if !submit {
				return printJSON(cmd.OutOrStdout(), vm.CreatePost(cli.userId))
			}
			task := vm.Submit(cli.userId)
			if task == nil {
				return errors.New("a post needs at least one screenshot")
			}
			task.Wait()
			state := vm.Get()
			if err := stateError(state.ErrorMessage); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), state.LastCreated)
		},
	}
	cmd.Flags().StringArrayVarP(&screenshots, "screenshot", "s", nil, "screenshot image URL (repeatable)")
	cmd.Flags().StringArrayVarP(&comments, "comment", "c", nil, "comment text (repeatable)")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "item indexes to remove")
	cmd.Flags().BoolVar(&submit, "submit", false, "send the post to the backend")
	return cmd
}
