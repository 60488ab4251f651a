package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/topfive/internal/config"
	"github.com/rshade/topfive/internal/logging"
)

// isTerminal reports whether w is a terminal. Anything other than an *os.File is not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	configPath     string
	listEndpoint   string
	detailEndpoint string
	timeout        time.Duration
	limit          int
	output         string
	maxPages       int
	batchSize      int
	debug          bool
	failOnPartial  bool
}

// runState is shared between the root command's hooks and its subcommands.
type runState struct {
	flags      rootFlags
	cfg        *config.Config
	configPath string
	logResult  *logging.LogPathResult
	version    string
}

// NewRootCmd creates the root Cobra command for the topfive CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv config.LookupEnvFunc) *cobra.Command {
	state := &runState{version: ver}

	cmd := &cobra.Command{
		Use:   "topfive",
		Short: "Report the five youngest users with a valid US phone number",
		Long: `topfive walks the paginated user listing, fetches every user's detail record,
keeps users whose phone number is a valid US number and prints the youngest
of them ordered by name.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.loadConfig(cmd, lookupEnv); err != nil {
				return err
			}
			result := setupLogging(cmd, state.cfg.Logging, state.flags.debug)
			state.logResult = &result
			if state.configPath != "" {
				logger.Debug().Ctx(cmd.Context()).Str("path", state.configPath).Msg("loaded config file")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, state.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, state)
		},
	}

	f := &state.flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file path (default ~/.topfive/config.yaml)")
	pf.StringVar(&f.listEndpoint, "list-endpoint", config.DefaultListEndpoint, "URL of the paginated id listing")
	pf.StringVar(&f.detailEndpoint, "detail-endpoint", config.DefaultDetailEndpoint, "base URL of the user detail endpoint")
	pf.DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "per-request HTTP timeout")
	pf.IntVar(&f.maxPages, "max-pages", 0, "maximum list pages to fetch (0 = unlimited)")
	pf.IntVar(&f.batchSize, "batch-size", config.DefaultBatchSize, "ids processed between progress updates")
	pf.IntVar(&f.limit, "limit", config.DefaultLimit, "number of users to report")
	pf.StringVarP(&f.output, "output", "o", config.FormatTable, "output format: table or json")
	pf.BoolVar(&f.debug, "debug", false, "enable debug logging")

	cmd.Flags().BoolVar(&f.failOnPartial, "fail-on-partial", false,
		"exit with code 2 when pagination stopped early")

	cmd.AddCommand(newConfigCmd(state))

	return cmd
}

// loadConfig layers defaults, file and env via config.Load, then applies any
// flags the user set explicitly and validates the result.
func (s *runState) loadConfig(cmd *cobra.Command, lookupEnv config.LookupEnvFunc) error {
	cfg, path, err := config.Load(s.flags.configPath, lookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("list-endpoint") {
		cfg.Endpoints.List = s.flags.listEndpoint
	}
	if flags.Changed("detail-endpoint") {
		cfg.Endpoints.Detail = s.flags.detailEndpoint
	}
	if flags.Changed("timeout") {
		cfg.HTTP.Timeout = s.flags.timeout
	}
	if flags.Changed("max-pages") {
		cfg.Pipeline.MaxPages = s.flags.maxPages
	}
	if flags.Changed("batch-size") {
		cfg.Pipeline.BatchSize = s.flags.batchSize
	}
	if flags.Changed("limit") {
		cfg.Report.Limit = s.flags.limit
	}
	if flags.Changed("output") {
		cfg.Report.Format = s.flags.output
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	s.cfg = cfg
	s.configPath = path
	return nil
}

const rootCmdExample = `  # Report the five youngest users from the default service
  topfive

  # Point at a local test server and emit JSON
  topfive --list-endpoint http://localhost:8080/list \
    --detail-endpoint http://localhost:8080/detail --output json

  # Report ten users and stop after three pages
  topfive --limit 10 --max-pages 3

  # Show the effective configuration
  topfive config show`
