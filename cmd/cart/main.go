package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/config"
)

// sessionOpener builds the session a command runs against
type sessionOpener func(out io.Writer, logger *zap.Logger) (*session, error)

func main() {
	open := func(out io.Writer, logger *zap.Logger) (*session, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		return openSession(cfg, out, logger)
	}

	rootCmd, finish := newRootCmd(open)
	err := rootCmd.Execute()
	if closeErr := finish(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to close cart session: %v\n", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every cart subcommand to a session opened before the
// command runs. finish closes that session and must be called once Execute
// returns, whether or not the command failed.
func newRootCmd(open sessionOpener) (rootCmd *cobra.Command, finish func() error) {
	var (
		verbose bool
		current *session
		logger  *zap.Logger
	)

	rootCmd = &cobra.Command{
		Use:   "cart",
		Short: "FashionHive terminal storefront cart",
		Long: `Shop the FashionHive catalog from the terminal.

The cart is saved after every change and restored on the next run. Items are
grouped by brand and each brand is checked out on its own.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				zapCfg := zap.NewDevelopmentConfig()
				zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
				logger, err = zapCfg.Build()
			}
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			current, err = open(cmd.OutOrStdout(), logger)
			return err
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	get := func() *session { return current }
	rootCmd.AddCommand(newAddCmd(get))
	rootCmd.AddCommand(newUpdateCmd(get))
	rootCmd.AddCommand(newRemoveCmd(get))
	rootCmd.AddCommand(newClearCmd(get))
	rootCmd.AddCommand(newClearBrandCmd(get))
	rootCmd.AddCommand(newShowCmd(get))
	rootCmd.AddCommand(newCheckoutCmd(get))

	finish = func() error {
		if logger != nil {
			defer logger.Sync()
		}
		if current == nil {
			return nil
		}
		s := current
		current = nil
		return s.Close()
	}

	return rootCmd, finish
}
