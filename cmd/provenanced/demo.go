package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nexuscore/provenance/internal/config"
	"github.com/nexuscore/provenance/internal/ledger"
	"github.com/nexuscore/provenance/internal/metrics"
)

// buildChain wires a chain with the logger and recorder every other
// service depends on. There is no persistence collaborator in scope,
// so each CLI invocation starts from genesis; "run" is the only
// subcommand that stays alive after seeding, and it mines no further
// blocks while it waits for a shutdown signal.
func buildChain(cfg config.Config, log *zap.SugaredLogger) (*ledger.Chain, *metrics.Collector, error) {
	collector := metrics.New(prometheus.DefaultRegisterer)
	chain, err := ledger.NewChain(cfg.BlockchainDifficulty, log, collector)
	if err != nil {
		return nil, nil, err
	}
	return chain, collector, nil
}

// seedSampleHistory records a small, realistic product lifecycle so
// the inspection subcommands (chain verify, product trace/verify)
// have something to show against an otherwise empty chain.
func seedSampleHistory(chain *ledger.Chain) {
	txs := []ledger.Transaction{
		ledger.NewProductCreationTx("TX-SAMPLE-1", "SUPPLIER-A", "PRODUCT-SAMPLE", "Colombian Coffee Beans", "1-ton lot, harvest 2026", "Huila, Colombia"),
		ledger.NewProductTransferTx("TX-SAMPLE-2", "SUPPLIER-A", "DISTRIBUTOR-B", "PRODUCT-SAMPLE", "Huila, Colombia", "Port of Buenaventura", ledger.StatusInTransit),
		ledger.NewProductVerificationTx("TX-SAMPLE-3", "INSPECTOR-C", "PRODUCT-SAMPLE", true, "organic certification confirmed"),
	}
	for _, tx := range txs {
		chain.AddTransaction(tx)
	}
	chain.MinePendingTransactions()
}
