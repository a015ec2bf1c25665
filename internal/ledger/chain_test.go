package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscore/provenance/internal/ledger"
)

func newTestChain(t *testing.T, difficulty int) *ledger.Chain {
	t.Helper()
	c, err := ledger.NewChain(difficulty, nil, nil)
	require.NoError(t, err)
	return c
}

func TestNewChain_Genesis(t *testing.T) {
	c := newTestChain(t, 4)
	chain := c.GetChain()

	require.Len(t, chain, 1)
	assert.Equal(t, int64(0), chain[0].Index)
	assert.Equal(t, ledger.GenesisPreviousHash, chain[0].PreviousHash)
	assert.Empty(t, chain[0].Transactions)
	assert.True(t, c.IsChainValid())
}

func TestNewChain_RejectsNegativeDifficulty(t *testing.T) {
	_, err := ledger.NewChain(-1, nil, nil)
	assert.ErrorIs(t, err, ledger.ErrInvalidDifficulty)
}

func TestChain_CreateAndTransfer(t *testing.T) {
	c := newTestChain(t, 2)

	creation := ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia")
	c.AddTransaction(creation)
	c.MinePendingTransactions()

	transfer := ledger.NewProductTransferTx("TX2", "S", "R", "P", "Colombia", "Warehouse", ledger.StatusInTransit)
	c.AddTransaction(transfer)
	c.MinePendingTransactions()

	chain := c.GetChain()
	require.Len(t, chain, 3)

	history, err := c.GetProductHistory("P")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "TX1", history[0].ID())
	assert.Equal(t, "TX2", history[1].ID())
}

func TestChain_MineWithEmptyMempoolProducesEmptyBlock(t *testing.T) {
	c := newTestChain(t, 2)
	block := c.MinePendingTransactions()
	assert.Empty(t, block.Transactions)
	assert.Len(t, c.GetChain(), 2)
}

func TestChain_GetTransactionHistory_ExcludesGenesis(t *testing.T) {
	c := newTestChain(t, 2)
	tx := ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia")
	c.AddTransaction(tx)
	c.MinePendingTransactions()

	history := c.GetTransactionHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "TX1", history[0].ID())
}

func TestChain_TamperDetection(t *testing.T) {
	c := newTestChain(t, 2)
	c.AddTransaction(ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia"))
	c.MinePendingTransactions()
	c.AddTransaction(ledger.NewProductTransferTx("TX2", "S", "R", "P", "Colombia", "Warehouse", ledger.StatusInTransit))
	c.MinePendingTransactions()

	require.True(t, c.IsChainValid())

	chain := c.GetChain()
	original := chain[1].Hash

	// Mutating the defensive copy must not affect the live chain.
	chain[1].Hash = "CORRUPTED_HASH"
	assert.True(t, c.IsChainValid())
	assert.NotEqual(t, original, chain[1].Hash)
}

func TestChain_DefensiveExposure_GetChain(t *testing.T) {
	c := newTestChain(t, 2)
	c.AddTransaction(ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia"))
	c.MinePendingTransactions()

	a := c.GetChain()
	a[0].Index = 99
	a[1].Transactions = nil

	b := c.GetChain()
	assert.Equal(t, int64(0), b[0].Index)
	require.Len(t, b[1].Transactions, 1)
}

func TestChain_GetProductHistory_EmptyIdentifier(t *testing.T) {
	c := newTestChain(t, 2)
	_, err := c.GetProductHistory("  ")
	assert.ErrorIs(t, err, ledger.ErrEmptyProductID)
}

func TestChain_GetProductHistory_UnknownProductIsEmpty(t *testing.T) {
	c := newTestChain(t, 2)
	history, err := c.GetProductHistory("nope")
	require.NoError(t, err)
	assert.Empty(t, history)
}
