// Package cli is the command line front end of the workout logger.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/workoutlog/internal/client"
	"github.com/2beens/workoutlog/internal/config"
	"github.com/2beens/workoutlog/internal/localcache"
	"github.com/2beens/workoutlog/internal/logging"
	"github.com/2beens/workoutlog/internal/tracker"
)

// app is shared by all commands.
type app struct {
	apiURL    string
	cachePath string
	logFile   string
	logLevel  string

	now        func() time.Time
	httpClient *http.Client

	cache *localcache.Store
	api   *client.Client
	ctrl  *tracker.Controller
}

func defaultLogFile() string {
	return filepath.Join(filepath.Dir(localcache.DefaultPath()), "client.log")
}

// NewRootCmd builds the command tree. httpClient may be nil.
func NewRootCmd(httpClient *http.Client, now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	a := &app{
		now:        now,
		httpClient: httpClient,
	}

	rootCmd := &cobra.Command{
		Use:           "workouts",
		Short:         "Log push/pull/legs workouts",
		Long:          `Workouts logs exercise performances to the workouts API and browses the history. Without arguments it starts the interactive terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: a.withController(func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		}),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", config.APIURL(), "workouts API base URL")
	flags.StringVar(&a.cachePath, "cache", localcache.DefaultPath(), "local history cache file, :memory: for none")
	flags.StringVar(&a.logFile, "log-file", defaultLogFile(), "log file, empty for stdout")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level")

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newLogCmd(),
		a.newDeleteCmd(),
		a.newPlansCmd(),
		a.newCalendarCmd(),
		&cobra.Command{
			Use:   "tui",
			Short: "Start the interactive terminal UI",
			Args:  cobra.NoArgs,
			RunE: a.withController(func(cmd *cobra.Command, args []string) error {
				return a.runTUI(cmd.Context())
			}),
		},
	)

	return rootCmd
}

// Execute runs the command line with the process arguments.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd(nil, nil)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// withController wraps a command that needs the api client, the local
// cache and the controller.
func (a *app) withController(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := a.setup(); err != nil {
			return err
		}
		defer func() {
			if closeErr := a.close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) setup() error {
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: a.logFile,
		LogLevel:    a.logLevel,
	})

	cache, err := localcache.Open(a.cachePath)
	if err != nil {
		return fmt.Errorf("open local cache: %w", err)
	}
	a.cache = cache
	a.api = client.New(a.apiURL, a.httpClient)
	a.ctrl = tracker.NewController(a.api, a.cache, a.now)
	return nil
}

func (a *app) close() error {
	if a.cache == nil {
		return nil
	}
	err := a.cache.Close()
	a.cache = nil
	return err
}
