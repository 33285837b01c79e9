package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	verbose    bool
	configPath string
	logPath    string
}

func run(ctx context.Context) error {
	opts := &options{}

	root := &cobra.Command{
		Use:          "cvdemo",
		Short:        "Interactive collection view demo",
		Long:         "cvdemo runs a full-screen collection view over a synthetic data set.\nArrows move the selection, click selects, click-and-drag reorders, q quits.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVar(&opts.logPath, "log-file", "", "write logs to this file (the terminal is taken over by the UI)")

	root.AddCommand(newGridCmd(opts))
	root.AddCommand(newListCmd(opts))

	return root.ExecuteContext(ctx)
}

// setup loads the config and builds the logger. The returned closer flushes
// the log file, if any.
func (o *options) setup() (*charmlog.Logger, Config, func(), error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return nil, Config{}, nil, err
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if o.logPath != "" {
		f, err := os.Create(o.logPath)
		if err != nil {
			return nil, Config{}, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	level := charmlog.InfoLevel
	if o.verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return logger, cfg, closer, nil
}

func newGridCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Browse the demo data as a multi-column grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, closer, err := opts.setup()
			if err != nil {
				return err
			}
			defer closer()
			return runDemo(cmd.Context(), logger, cfg, cfg.GridLayout())
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Browse the demo data as a single-column list",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, closer, err := opts.setup()
			if err != nil {
				return err
			}
			defer closer()
			return runDemo(cmd.Context(), logger, cfg, cfg.ListLayout())
		},
	}
}
