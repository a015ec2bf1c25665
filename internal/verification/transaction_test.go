package verification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscore/provenance/internal/ledger"
	"github.com/nexuscore/provenance/internal/verification"
)

func TestVerifyTransaction_Match(t *testing.T) {
	tx := ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia")
	chain := &fakeChain{history: []ledger.Transaction{tx}}
	svc := verification.NewTransactionVerificationService(chain)

	result := svc.VerifyTransaction(tx)
	assert.True(t, result.Verified)
}

func TestVerifyTransaction_DataMismatch(t *testing.T) {
	original := ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Colombia")
	chain := &fakeChain{history: []ledger.Transaction{original}}
	svc := verification.NewTransactionVerificationService(chain)

	altered := ledger.NewProductCreationTx("TX1", "S", "P", "Coffee", "", "Brazil")
	result := svc.VerifyTransaction(altered)
	assert.False(t, result.Verified)
	assert.Equal(t, "data mismatch", result.Reason)
}

func TestVerifyTransaction_NotFound(t *testing.T) {
	chain := &fakeChain{}
	svc := verification.NewTransactionVerificationService(chain)

	missing := ledger.NewProductCreationTx("TX9", "S", "P", "Coffee", "", "Colombia")
	result := svc.VerifyTransaction(missing)
	assert.False(t, result.Verified)
	assert.Equal(t, "not found", result.Reason)
}

func TestValidateBlockchainIntegrity(t *testing.T) {
	svc := verification.NewTransactionVerificationService(&fakeChain{valid: true})
	report := svc.ValidateBlockchainIntegrity()
	assert.True(t, report.Valid)

	svcBad := verification.NewTransactionVerificationService(&fakeChain{valid: false})
	assert.False(t, svcBad.ValidateBlockchainIntegrity().Valid)
}
