package verification

import (
	"github.com/nexuscore/provenance/internal/ledger"
)

// TransactionVerificationResult reports whether a caller-held
// transaction matches its ledger copy.
type TransactionVerificationResult struct {
	Verified bool
	Reason   string
}

// TransactionVerificationService walks ledger history for a match on
// a caller-held transaction's identifier and structurally compares it.
type TransactionVerificationService struct {
	chain ledger.ChainReader
}

func NewTransactionVerificationService(chain ledger.ChainReader) *TransactionVerificationService {
	return &TransactionVerificationService{chain: chain}
}

// VerifyTransaction returns a positive result only if a ledger
// transaction with the same identifier exists and its identifier,
// type, timestamp, and attribute map all match tx exactly.
func (s *TransactionVerificationService) VerifyTransaction(tx ledger.Transaction) TransactionVerificationResult {
	for _, candidate := range s.chain.GetTransactionHistory() {
		if candidate.ID() != tx.ID() {
			continue
		}
		if sameTransaction(candidate, tx) {
			return TransactionVerificationResult{Verified: true, Reason: "match"}
		}
		return TransactionVerificationResult{Verified: false, Reason: "data mismatch"}
	}
	return TransactionVerificationResult{Verified: false, Reason: "not found"}
}

func sameTransaction(a, b ledger.Transaction) bool {
	if a.ID() != b.ID() || a.Type() != b.Type() || !a.CreatedAt().Equal(b.CreatedAt()) {
		return false
	}
	da, db := a.Data(), b.Data()
	if len(da) != len(db) {
		return false
	}
	for k, v := range da {
		if db[k] != v {
			return false
		}
	}
	return true
}

// IntegrityReport is the thin wrapper result of
// ValidateBlockchainIntegrity.
type IntegrityReport struct {
	Valid   bool
	Message string
}

// ValidateBlockchainIntegrity is a message-tagged wrapper over the
// chain's own IsChainValid walk.
func (s *TransactionVerificationService) ValidateBlockchainIntegrity() IntegrityReport {
	if s.chain.IsChainValid() {
		return IntegrityReport{Valid: true, Message: "chain integrity verified"}
	}
	return IntegrityReport{Valid: false, Message: "chain integrity compromised"}
}
