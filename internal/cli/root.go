package cli

import (
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/clock"
	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/logging"
)

// options carries state shared by every command of one invocation.
type options struct {
	cfg     config.Config
	cfgErr  error
	date    string
	logs    io.Closer
	screens func() (tcell.Screen, error)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(tcell.NewScreen)
}

func newRootCmd(screens func() (tcell.Screen, error)) *cobra.Command {
	opts := &options{screens: screens}
	opts.cfg, opts.cfgErr = config.Load()

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Play today's Wordle in the terminal",
		Long: `wordle fetches today's solution and lets you play it in the terminal.

Type letters to fill a row, Backspace to delete, Enter to submit and Esc to quit.
Six guesses; green is the right letter in the right spot, yellow is in the word
elsewhere, gray is not in the word.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.cfgErr != nil {
				return opts.cfgErr
			}
			closer, err := logging.Setup(opts.cfg.LogLevel, opts.cfg.LogFile)
			if err != nil {
				return err
			}
			opts.logs = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logs == nil {
				return nil
			}
			return opts.logs.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfg.SourceURL, "source", opts.cfg.SourceURL, "Word source base URL (env: WORDLE_SOURCE_URL)")
	rootCmd.PersistentFlags().DurationVar(&opts.cfg.FetchTimeout, "timeout", opts.cfg.FetchTimeout, "Word fetch timeout (env: WORDLE_FETCH_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "Log level (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.cfg.LogFile, "log-file", opts.cfg.LogFile, `Log file, "-" for stderr (env: LOG_FILE)`)
	rootCmd.PersistentFlags().StringVar(&opts.date, "date", "", "Play the puzzle of this UTC date (YYYY-MM-DD) instead of today")

	// Add subcommands
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newWordCmd(opts))

	return rootCmd
}

// fetcher builds the word source honoring --date.
func (o *options) fetcher() (*daily.Fetcher, error) {
	var clk clock.Clock = clock.New()
	if o.date != "" {
		fixed, err := clock.FixedDate(o.date)
		if err != nil {
			return nil, err
		}
		clk = fixed
	}
	timeout := o.cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return daily.NewFetcher(o.cfg.SourceURL, timeout, clk), nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
