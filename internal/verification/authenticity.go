// Package verification implements product authenticity confirmation
// and caller-transaction round-trip verification against the ledger.
package verification

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nexuscore/provenance/internal/ledger"
)

// ErrEmptyProductID is returned when a caller passes a blank (or
// whitespace-only) product identifier to a query that requires one.
var ErrEmptyProductID = errors.New("product identifier is empty")

// AuthenticityStatus is the terminal classification of an authenticity
// check. Pending is the status a result starts with and must never be
// returned to a caller — it exists only to catch a verifier that forgot
// to set a final status.
type AuthenticityStatus string

const (
	StatusPending   AuthenticityStatus = "PENDING"
	StatusConfirmed AuthenticityStatus = "CONFIRMED"
	StatusRejected  AuthenticityStatus = "REJECTED"
)

// AuthenticityResult is the outcome of VerifyProductAuthenticity.
type AuthenticityResult struct {
	ProductID string
	Authentic bool
	Status    AuthenticityStatus
	Reasons   []string
}

// AuthenticityVerifier confirms or rejects a product's authenticity
// from ledger facts: the product must have recorded history, the chain
// must be intact, and every transaction in the product's history must
// self-validate.
type AuthenticityVerifier struct {
	chain ledger.ChainReader
}

func NewAuthenticityVerifier(chain ledger.ChainReader) *AuthenticityVerifier {
	return &AuthenticityVerifier{chain: chain}
}

// VerifyProductAuthenticity implements spec.md §4.4's three-step
// algorithm in order, short-circuiting on the first failure.
func (v *AuthenticityVerifier) VerifyProductAuthenticity(productID string) (*AuthenticityResult, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, ErrEmptyProductID
	}

	result := &AuthenticityResult{ProductID: productID, Status: StatusPending}

	history, err := v.chain.GetProductHistory(productID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching product history")
	}
	if len(history) == 0 {
		result.Authentic = false
		result.Status = StatusRejected
		result.Reasons = append(result.Reasons, "not found in ledger")
		return result, nil
	}

	if !v.chain.IsChainValid() {
		result.Authentic = false
		result.Status = StatusRejected
		result.Reasons = append(result.Reasons, "integrity compromised")
		return result, nil
	}

	validCount := 0
	for _, tx := range history {
		if err := tx.Validate(); err != nil {
			result.Authentic = false
			result.Status = StatusRejected
			result.Reasons = append(result.Reasons, fmt.Sprintf("invalid transaction %s", tx.ID()))
			return result, nil
		}
		validCount++
	}

	result.Authentic = true
	result.Status = StatusConfirmed
	result.Reasons = append(result.Reasons, fmt.Sprintf("%d valid transactions", validCount))
	return result, nil
}
