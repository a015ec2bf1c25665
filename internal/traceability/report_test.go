package traceability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscore/provenance/internal/ledger"
	"github.com/nexuscore/provenance/internal/traceability"
)

func newChainWithHistory(t *testing.T, txs ...ledger.Transaction) *ledger.Chain {
	t.Helper()
	c, err := ledger.NewChain(1, nil, nil)
	require.NoError(t, err)
	for _, tx := range txs {
		c.AddTransaction(tx)
	}
	c.MinePendingTransactions()
	return c
}

func TestGenerateReport_CompleteAfterCreateAndTransfer(t *testing.T) {
	c := newChainWithHistory(t,
		ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia"),
		ledger.NewProductTransferTx("TX2", "S", "R", "P", "Colombia", "Warehouse", ledger.StatusInTransit),
	)
	svc := traceability.NewService(c)

	report, err := svc.GenerateReport("P")
	require.NoError(t, err)
	assert.True(t, report.Complete)
	assert.Equal(t, "Colombia", report.Origin)
	assert.Equal(t, "Warehouse", report.CurrentLocation)
	assert.Equal(t, ledger.StatusInTransit, report.CurrentStatus)
}

func TestGenerateReport_FallsBackWithoutTransfers(t *testing.T) {
	c := newChainWithHistory(t, ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia"))
	svc := traceability.NewService(c)

	report, err := svc.GenerateReport("P")
	require.NoError(t, err)
	assert.True(t, report.Complete)
	assert.Equal(t, "Colombia", report.CurrentLocation)
	assert.Equal(t, ledger.StatusCreated, report.CurrentStatus)
}

func TestGenerateReport_EmptyHistoryIsIncomplete(t *testing.T) {
	c := newChainWithHistory(t)
	svc := traceability.NewService(c)

	report, err := svc.GenerateReport("missing")
	require.NoError(t, err)
	assert.False(t, report.Complete)
	assert.Contains(t, report.MissingReasons, "no history")
}
