// Package compliance evaluates a registry of named requirements
// against a slice of ledger transactions.
package compliance

import (
	"strconv"
	"strings"

	"github.com/nexuscore/provenance/internal/ledger"
)

// Requirement is a named rule: a human-readable description plus a
// free-form rule expression. The built-in evaluator recognizes three
// keywords (case-insensitively) inside the expression; anything else
// is treated as vacuously satisfied.
type Requirement struct {
	ID          string
	Description string
	Rule        string
}

const (
	ruleOriginRequired       = "origin_required"
	ruleVerificationRequired = "verification_required"
	ruleTimestampRequired    = "timestamp_required"
)

// RequirementResult is one requirement's outcome against a batch of
// transactions.
type RequirementResult struct {
	Requirement Requirement
	Passed      bool
	Offenders   []string // transaction identifiers that failed this requirement
}

// Report is the full evaluation across a requirement registry.
type Report struct {
	Results []RequirementResult
}

// Validator holds the requirement registry and evaluates batches of
// transactions against it.
type Validator struct {
	registry map[string]Requirement
	order    []string // registration order, for deterministic reports
}

func NewValidator() *Validator {
	return &Validator{registry: make(map[string]Requirement)}
}

// Register adds or replaces a requirement under its ID.
func (v *Validator) Register(req Requirement) {
	if _, exists := v.registry[req.ID]; !exists {
		v.order = append(v.order, req.ID)
	}
	v.registry[req.ID] = req
}

// Evaluate runs every registered requirement against transactions, in
// registration order, and returns a per-requirement pass/fail report
// with offending transaction identifiers for each failure.
func (v *Validator) Evaluate(transactions []ledger.Transaction) Report {
	report := Report{Results: make([]RequirementResult, 0, len(v.order))}
	for _, id := range v.order {
		req := v.registry[id]
		result := RequirementResult{Requirement: req, Passed: true}
		for _, tx := range transactions {
			if !satisfies(req.Rule, tx) {
				result.Passed = false
				result.Offenders = append(result.Offenders, tx.ID())
			}
		}
		report.Results = append(report.Results, result)
	}
	return report
}

func satisfies(rule string, tx ledger.Transaction) bool {
	lowered := strings.ToLower(rule)
	if strings.Contains(lowered, ruleOriginRequired) && strings.TrimSpace(tx.Data()["origin"]) == "" {
		return false
	}
	if strings.Contains(lowered, ruleVerificationRequired) {
		verified, err := strconv.ParseBool(tx.Data()["verified"])
		if err != nil || !verified {
			return false
		}
	}
	if strings.Contains(lowered, ruleTimestampRequired) && tx.CreatedAt().IsZero() {
		return false
	}
	return true
}
