package commands

import (
	"encoding/json"
	"errors"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/navbryce/daily-sns/config"
	"github.com/navbryce/daily-sns/logging"
	"github.com/navbryce/daily-sns/services"
	"github.com/navbryce/daily-sns/viewmodels"
)

type cliContext struct {
	cfg         *config.Config
	logger      *zap.Logger
	dataService services.DataService
	userId      string
}

var (
	configPath string
	apiURL     string
	userId     string
	verbose    bool

	cli *cliContext
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sns",
		Short:         "Headless client for the daily-sns feed",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, verbose)
			if err != nil {
				return err
			}

			base := apiURL
			if base == "" {
				base = cfg.Client.APIBaseURL
			}
			var dataService services.DataService
			if base != "" {
				logger.Debug("using remote data service", zap.String("base", base))
				dataService = services.NewHTTPDataService(base)
			} else {
				delay, err := cfg.MockDelay()
				if err != nil {
					return err
				}
				opts := []services.MockOption{services.WithDelay(delay), services.WithLogger(logger)}
				if cfg.Mock.Seed != 0 {
					opts = append(opts, services.WithRand(rand.New(rand.NewSource(cfg.Mock.Seed))))
				}
				dataService = services.NewMockDataService(opts...)
			}

			currentUser := userId
			if currentUser == "" {
				currentUser = cfg.Client.UserId
			}
			cli = &cliContext{
				cfg:         cfg,
				logger:      logger,
				dataService: dataService,
				userId:      currentUser,
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cli != nil {
				_ = cli.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (e.g. http://127.0.0.1:8080); empty uses the in-process mock")
	root.PersistentFlags().StringVarP(&userId, "user", "u", "", "current user id")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(feedCmd(), albumsCmd(), userCmd(), composeCmd(), overviewCmd())
	return root
}

func (c *cliContext) viewModelOptions(cmd *cobra.Command) []viewmodels.Option {
	return []viewmodels.Option{
		viewmodels.WithContext(cmd.Context()),
		viewmodels.WithLogger(c.logger),
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// stateError turns a view model error message back into an error.
func stateError(message string) error {
	if message == "" {
		return nil
	}
	return errors.New(message)
}
