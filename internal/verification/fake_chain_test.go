package verification_test

import (
	"strings"

	"github.com/nexuscore/provenance/internal/ledger"
)

// fakeChain is a minimal ledger.ChainReader used to test the
// verification services without mining real blocks.
type fakeChain struct {
	blocks  []*ledger.Block
	valid   bool
	history []ledger.Transaction
}

func (f *fakeChain) GetChain() []*ledger.Block       { return f.blocks }
func (f *fakeChain) GetLatestBlock() *ledger.Block   { return f.blocks[len(f.blocks)-1] }
func (f *fakeChain) GetTransactionHistory() []ledger.Transaction {
	return f.history
}
func (f *fakeChain) GetProductHistory(productID string) ([]ledger.Transaction, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ledger.ErrEmptyProductID
	}
	var out []ledger.Transaction
	for _, tx := range f.history {
		if tx.ProductID() == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}
func (f *fakeChain) IsChainValid() bool { return f.valid }

var _ ledger.ChainReader = (*fakeChain)(nil)
