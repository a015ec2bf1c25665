// Command provenanced is a thin CLI harness over the ledger engine:
// it owns process wiring (logging, configuration, signal handling)
// and delegates every domain operation to internal/ledger and its
// consumer packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nexuscore/provenance/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "provenanced",
		Short:         "Supply-chain provenance ledger node and inspection CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newMineCmd(), newChainCmd(), newProductCmd(), newLoginCmd())
	return root
}

// newLogger builds the SugaredLogger every subcommand shares.
func newLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

func loadConfig() config.Config {
	return config.Load()
}
