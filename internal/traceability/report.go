// Package traceability builds per-product chronological projections
// and completeness-flagged reports over the ledger.
package traceability

import (
	"github.com/nexuscore/provenance/internal/ledger"
)

// Report is the per-product traceability projection: where it
// originated, where it currently is, and whether enough history exists
// to say so with confidence.
type Report struct {
	ProductID       string
	Origin          string
	CurrentLocation string
	CurrentStatus   ledger.ProductStatus
	Complete        bool
	MissingReasons  []string
	History         []ledger.Transaction
}

// Service builds traceability projections and reports from the ledger.
type Service struct {
	chain ledger.ChainReader
}

func NewService(chain ledger.ChainReader) *Service {
	return &Service{chain: chain}
}

// GetProductHistory delegates straight to the chain.
func (s *Service) GetProductHistory(productID string) ([]ledger.Transaction, error) {
	return s.chain.GetProductHistory(productID)
}

// GenerateReport walks a product's projection and extracts origin from
// the first PRODUCT_CREATION, and current location/status from the
// most recent PRODUCT_TRANSFER — falling back to the origin/CREATED
// pair when no transfers exist. The report is incomplete whenever
// origin, currentLocation, or currentStatus cannot be derived.
func (s *Service) GenerateReport(productID string) (*Report, error) {
	history, err := s.chain.GetProductHistory(productID)
	if err != nil {
		return nil, err
	}

	report := &Report{ProductID: productID, History: history}

	if len(history) == 0 {
		report.Complete = false
		report.MissingReasons = append(report.MissingReasons, "no history")
		return report, nil
	}

	var origin string
	var originFound bool
	for _, tx := range history {
		if tx.Type() == ledger.TypeProductCreation {
			origin = tx.Data()["origin"]
			originFound = true
			break
		}
	}

	var latestLocation string
	var latestStatus ledger.ProductStatus
	var transferFound bool
	for i := len(history) - 1; i >= 0; i-- {
		tx := history[i]
		if tx.Type() == ledger.TypeProductTransfer {
			latestLocation = tx.Data()["toLocation"]
			latestStatus = ledger.ProductStatus(tx.Data()["newStatus"])
			transferFound = true
			break
		}
	}

	if !transferFound {
		latestLocation = origin
		latestStatus = ledger.StatusCreated
	}

	report.Origin = origin
	report.CurrentLocation = latestLocation
	report.CurrentStatus = latestStatus

	if !originFound {
		report.MissingReasons = append(report.MissingReasons, "origin could not be derived")
	}
	if latestLocation == "" {
		report.MissingReasons = append(report.MissingReasons, "currentLocation could not be derived")
	}
	if latestStatus == "" {
		report.MissingReasons = append(report.MissingReasons, "currentStatus could not be derived")
	}
	report.Complete = len(report.MissingReasons) == 0

	return report, nil
}
