package ledger

import "testing"

// TestChain_TamperDetection_OnLiveBlock exercises spec scenario 5
// directly against the chain's own block pointers (white-box), since
// every value GetChain returns to callers is a defensive copy and
// mutating it must NOT affect the live chain — see chain_test.go's
// TestChain_TamperDetection for that externally-observed half of the
// invariant.
func TestChain_TamperDetection_OnLiveBlock(t *testing.T) {
	c, err := NewChain(2, nil, nil)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	c.AddTransaction(NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia"))
	c.MinePendingTransactions()
	c.AddTransaction(NewProductTransferTx("TX2", "S", "R", "P", "Colombia", "Warehouse", StatusInTransit))
	c.MinePendingTransactions()

	if !c.IsChainValid() {
		t.Fatal("expected freshly mined chain to be valid")
	}

	original := c.blocks[1].Hash
	c.blocks[1].Hash = "CORRUPTED_HASH"
	if c.IsChainValid() {
		t.Fatal("expected tampered chain to be invalid")
	}

	c.blocks[1].Hash = original
	if !c.IsChainValid() {
		t.Fatal("expected chain to be valid again after restoring hash")
	}
}
