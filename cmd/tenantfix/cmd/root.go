package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tenantfix/internal/patch"
	"tenantfix/internal/rewrite"
)

var (
	verbose bool
	logger  *zap.Logger
)

type fixOptions struct {
	output string
	dryRun bool
}

// newRootCmd builds the tenantfix command.
func newRootCmd() *cobra.Command {
	var opts fixOptions

	cmd := &cobra.Command{
		Use:   "tenantfix <test_file>",
		Short: "Add the tenant identifier to a generated backend test file",
		Long: `tenantfix patches a Go test file so that its fixtures carry a tenant:

  - declares tenantID after the first testutils.SetupTestDB() / defer pair
  - prepends tenant_id to INSERT INTO node_instances (user_id, ...) column lists
  - sets tenant_id on every fake auth middleware that sets claims and calls c.Next()

The file is overwritten in place unless --output or --dry-run is given.
VALUES lists of patched INSERT statements are not touched and must be fixed by hand.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; don't bury I/O errors under usage.
			cmd.SilenceUsage = true
			return runFix(cmd, args[0], opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the patched file here instead of overwriting the input")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print a unified diff and leave the file alone")

	return cmd
}

func runFix(cmd *cobra.Command, filename string, opts fixOptions) error {
	f, err := rewrite.Load(filename)
	if err != nil {
		return err
	}

	patched, results := patch.Run(f.Content)
	for _, r := range results {
		logger.Debug("Pass finished",
			zap.String("file", filename),
			zap.String("pass", r.Name),
			zap.Bool("changed", r.Changed),
			zap.Int("matches", r.Matches),
			zap.Ints("lines", r.Lines))
		if r.Changed && r.Name == (patch.InsertPatcher{}).Name() {
			logger.Warn("VALUES lists were not extended for the new tenant_id column",
				zap.String("file", filename),
				zap.Ints("lines", r.Lines))
		}
	}
	if !patch.AnyChanged(results) {
		logger.Info("Nothing to fix", zap.String("file", filename))
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		diff, err := f.Diff(patched)
		if err != nil {
			return err
		}
		fmt.Fprint(out, diff)
		return nil
	}

	if err := f.Save(opts.output, patched); err != nil {
		return err
	}
	if opts.output != "" && opts.output != filename {
		fmt.Fprintf(out, "Fixed %s -> %s\n", filename, opts.output)
		return nil
	}
	fmt.Fprintf(out, "Fixed %s\n", filename)
	return nil
}

// Execute runs the root command and exits 1 on any error.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
