package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/genericmappingtools/gmt-go/pkg/gmt"
	"github.com/genericmappingtools/gmt-go/pkg/gmt/logging"
)

type options struct {
	configPath string
	libraryDir string
	verbose    bool

	logger *zap.Logger
}

// config merges the optional config file with command-line overrides.
func (o *options) config() (gmt.Config, error) {
	var cfg gmt.Config
	if o.configPath != "" {
		var err error
		if cfg, err = gmt.LoadConfig(o.configPath); err != nil {
			return gmt.Config{}, err
		}
	}
	if o.libraryDir != "" {
		cfg.LibraryDir = o.libraryDir
	}
	cfg.Logger = logging.NewZap(o.logger)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gmt-go",
		Short: "Locate, validate and drive the GMT shared library",
		Long: `gmt-go loads libgmt, the Generic Mapping Tools shared library.

The library is looked up in $GMT_LIBRARY_PATH when set, otherwise through the
platform's shared library search path.`,
		Version:       gmt.WrapperVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.libraryDir, "library-dir", "", "directory containing libgmt (overrides $GMT_LIBRARY_PATH)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newPathCmd(opts),
		newCheckCmd(opts),
		newInfoCmd(opts),
		newModuleCmd(opts),
		newGrdinfoCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
