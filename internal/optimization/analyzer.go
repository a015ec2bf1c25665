// Package optimization derives process-improvement recommendations
// from a caller-chosen slice of ledger transactions.
package optimization

import (
	"fmt"
	"sort"

	"github.com/nexuscore/provenance/internal/ledger"
)

// RecommendationType tags the class of recommendation.
type RecommendationType string

const (
	TransitTimeOptimization  RecommendationType = "TRANSIT_TIME_OPTIMIZATION"
	VolumeBottleneck         RecommendationType = "VOLUME_BOTTLENECK"
	SupplierUnderutilization RecommendationType = "SUPPLIER_UNDERUTILIZATION"
)

// Recommendation is one derived suggestion. Suggestion and
// ExpectedImpact are always non-empty.
type Recommendation struct {
	Type           RecommendationType
	Suggestion     string
	ExpectedImpact string
}

// Analyzer produces recommendations from ledger statistics.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs all three recommendation classes over transactions.
func (a *Analyzer) Analyze(transactions []ledger.Transaction) []Recommendation {
	var out []Recommendation
	out = append(out, a.transitTimeRecommendations(transactions)...)
	out = append(out, a.volumeBottleneckRecommendations(transactions)...)
	out = append(out, a.supplierUnderutilizationRecommendations(transactions)...)
	return out
}

func (a *Analyzer) transitTimeRecommendations(transactions []ledger.Transaction) []Recommendation {
	byProduct := make(map[string][]ledger.Transaction)
	for _, tx := range transactions {
		pid := tx.ProductID()
		if pid == "" {
			continue
		}
		byProduct[pid] = append(byProduct[pid], tx)
	}

	var out []Recommendation
	for _, pid := range sortedGroupKeys(byProduct) {
		txs := byProduct[pid]
		if len(txs) < 2 {
			continue
		}
		sort.Slice(txs, func(i, j int) bool { return txs[i].CreatedAt().Before(txs[j].CreatedAt()) })

		var totalHours float64
		for i := 1; i < len(txs); i++ {
			totalHours += txs[i].CreatedAt().Sub(txs[i-1].CreatedAt()).Hours()
		}
		meanHours := totalHours / float64(len(txs)-1)
		if meanHours > 48 {
			out = append(out, Recommendation{
				Type:           TransitTimeOptimization,
				Suggestion:     fmt.Sprintf("product %s averages %.1fh between events; streamline handoffs", pid, meanHours),
				ExpectedImpact: "expected 30% reduction in transit time",
			})
		}
	}
	return out
}

func (a *Analyzer) volumeBottleneckRecommendations(transactions []ledger.Transaction) []Recommendation {
	if len(transactions) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, tx := range transactions {
		counts[tx.Type()]++
	}

	var out []Recommendation
	total := float64(len(transactions))
	for _, typ := range sortedKeys(counts) {
		share := float64(counts[typ]) / total
		if share > 0.6 {
			out = append(out, Recommendation{
				Type:           VolumeBottleneck,
				Suggestion:     fmt.Sprintf("transaction type %s accounts for %.0f%% of ledger volume; consider parallelizing its processing", typ, share*100),
				ExpectedImpact: "reduces queueing behind the dominant transaction type",
			})
		}
	}
	return out
}

func (a *Analyzer) supplierUnderutilizationRecommendations(transactions []ledger.Transaction) []Recommendation {
	counts := make(map[string]int)
	for _, tx := range transactions {
		party := tx.Data()["fromParty"]
		if party == "" {
			continue
		}
		counts[party]++
	}
	if len(counts) < 2 {
		return nil
	}

	var total int
	for _, c := range counts {
		total += c
	}
	mean := float64(total) / float64(len(counts))

	var out []Recommendation
	for _, party := range sortedKeys(counts) {
		if float64(counts[party]) < mean*0.5 {
			out = append(out, Recommendation{
				Type:           SupplierUnderutilization,
				Suggestion:     fmt.Sprintf("supplier %s handles far fewer transfers than its peers; consider redistributing volume", party),
				ExpectedImpact: "balances load across suppliers",
			})
		}
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedGroupKeys(m map[string][]ledger.Transaction) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
