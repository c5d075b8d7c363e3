package plan

import "fmt"

// Analyzer inspects a finished Trace and surfaces diagnostics about the
// run -- not a cost model (the normalizer's decompositions are
// deterministic, not cost-based, per spec.md §1's non-goals), but
// observations a user watching -watch output would want: rule fan-out,
// whether the target form was already satisfied, and so on.
type Analyzer struct{}

// NewAnalyzer returns an Analyzer. It carries no configuration today; the
// type exists so diagnostics can grow state (thresholds, dialect hints)
// without changing every call site.
func NewAnalyzer() *Analyzer { return &Analyzer{} }

// Issue is one diagnostic finding about a trace.
type Issue struct {
	Severity    string `json:"severity"` // INFO, WARNING
	Description string `json:"description"`
}

// Analyze returns the diagnostics for trace.
func (a *Analyzer) Analyze(trace *Trace) []Issue {
	var issues []Issue

	// A trace whose only nodes are 1NF observations had no decomposition
	// rule fire.
	satisfied := true
	for _, n := range trace.Nodes {
		if n.Rule != "1NF" {
			satisfied = false
			break
		}
	}
	if satisfied {
		issues = append(issues, Issue{
			Severity:    "INFO",
			Description: fmt.Sprintf("%s already satisfied %s; no decomposition rule fired", trace.Source, trace.Target),
		})
		return issues
	}

	counts := trace.RuleCounts()
	for rule, n := range counts {
		if n >= 5 {
			issues = append(issues, Issue{
				Severity:    "WARNING",
				Description: fmt.Sprintf("%s fired %d times; the source table may be carrying many independent dependencies", rule, n),
			})
		}
	}

	if len(trace.Result) > 1+2*len(counts) {
		issues = append(issues, Issue{
			Severity:    "INFO",
			Description: fmt.Sprintf("decomposition produced %d tables from a single source", len(trace.Result)),
		})
	}

	return issues
}
