package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/MeKo-Tech/sortbench/internal/config"
	"github.com/MeKo-Tech/sortbench/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by one command tree.
type app struct {
	v       *viper.Viper
	loader  *config.Loader
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the sortbench command tree. Each call gets its own
// viper instance, so trees built in tests do not share flag bindings.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	a.loader = config.NewLoaderWithViper(a.v)

	rootCmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark classic sorting algorithms",
		Long: `sortbench times six classic comparison sorts on generated integer arrays.

Algorithms: selection, recursive-selection, insertion, merge, bubble, quick.

Examples:
  sortbench demo
  sortbench run --size 10000 --iterations 5 --format json
  sortbench run --algorithms merge,quick --chart chart.png
  sortbench sort 5 3 9 1 --algorithm merge
  sortbench config init`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default is search in ., $HOME, $HOME/.config/sortbench, /etc/sortbench)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("version", false, "print version information and exit")

	_ = a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := a.loadConfig(); err != nil {
			return err
		}
		a.setupLogging(cmd.ErrOrStderr())
		return nil
	}

	rootCmd.AddCommand(
		newRunCommand(a),
		newDemoCommand(a),
		newListCommand(a),
		newSortCommand(a),
		newConfigCommand(a),
	)

	return rootCmd
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// loadConfig reads the config file and environment. Bound flags are
// already registered on the viper instance, so they take precedence.
func (a *app) loadConfig() error {
	cfg, err := a.loader.LoadWithFile(a.cfgFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	a.cfg = cfg
	return nil
}

// setupLogging installs a JSON logger on w. Reports go to stdout, so logs
// are written to stderr.
func (a *app) setupLogging(w io.Writer) {
	logLevel := slog.LevelInfo
	if a.cfg.Verbose {
		logLevel = slog.LevelDebug
	} else {
		switch a.cfg.LogLevel {
		case "debug":
			logLevel = slog.LevelDebug
		case "warn":
			logLevel = slog.LevelWarn
		case "error":
			logLevel = slog.LevelError
		}
	}

	a.logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(a.logger)
}

// bindFlags binds each flag to its config key.
func (a *app) bindFlags(cmd *cobra.Command, bindings map[string]string) {
	for key, flag := range bindings {
		_ = a.v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}
