package main

import (
	"github.com/spf13/cobra"
)

func newMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Seed a sample product lifecycle and mine it into a fresh chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			cfg := loadConfig()
			chain, _, err := buildChain(cfg, log)
			if err != nil {
				return err
			}
			seedSampleHistory(chain)

			latest := chain.GetLatestBlock()
			cmd.Printf("mined block %d, hash=%s, transactions=%d\n", latest.Index, latest.Hash, len(latest.Transactions))
			return nil
		},
	}
}
