package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the ledger node and block until terminated",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			cfg := loadConfig()
			log.Infow("starting provenance node", "difficulty", cfg.BlockchainDifficulty, "sessionTimeoutMin", cfg.SessionTimeoutMin)

			chain, _, err := buildChain(cfg, log)
			if err != nil {
				log.Errorw("failed to initialize chain", "error", err)
				return err
			}
			seedSampleHistory(chain)
			log.Infow("node initialized", "height", len(chain.GetChain()))

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			log.Info("node running, press Ctrl+C to stop")
			sig := <-shutdown
			log.Infow("caught signal, shutting down", "signal", sig.String())
			return nil
		},
	}
}
