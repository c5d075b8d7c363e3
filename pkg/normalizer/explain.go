package normalizer

import (
	"fmt"
	"time"

	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
	"github.com/mjmoore-dev/dbnormalizer/pkg/plan"
)

// Explain runs the same cascade as Normalize but also narrates, as a
// plan.Trace, which detection function fired on which pair and which
// table absorbed the result -- the -explain surface recovered from the
// original implementation's commented-out decomposition narration.
func Explain(table *model.Table, deps *model.DependencyManager, level Level) ([]*model.Table, *plan.Trace) {
	start := time.Now()
	trace := plan.NewTrace(table.Name, level.String())

	needsKey, needsNonNull := detect1NF(table)
	tables := normalizeTo1NF(table.Clone(), deps)
	keyCols := 0
	if needsKey {
		keyCols = len(tables[0].PrimaryKey)
	}
	trace.Add(plan.Node{Rule: "1NF", Detail: describe1NFNode(needsKey, needsNonNull, keyCols)})
	if level == OneNF {
		return finishExplain(trace, tables, start)
	}

	for _, t := range tables {
		for _, p := range partialDependencies(t, deps) {
			trace.Add(plan.Node{
				Rule: "2NF", Determinant: p.Determinant, Column: p.Column,
				Table:  model.ToTableName(p.Determinant),
				Detail: "partial dependency moved off the composite key",
			})
		}
	}
	tables = normalizeTo2NF(tables, deps)
	if level == TwoNF {
		return finishExplain(trace, tables, start)
	}

	for _, t := range tables {
		for _, p := range transitiveDependencies(t, deps) {
			trace.Add(plan.Node{
				Rule: "3NF", Determinant: p.Determinant, Column: p.Column,
				Table:  model.ToTableName(p.Determinant),
				Detail: "transitive dependency split into its own table",
			})
		}
	}
	tables = normalizeTo3NF(tables, deps)
	if level == ThreeNF {
		return finishExplain(trace, tables, start)
	}

	for _, t := range tables {
		for _, p := range bcnfViolations(t, deps) {
			trace.Add(plan.Node{
				Rule: "BCNF", Determinant: p.Determinant, Column: p.Column,
				Table:  model.ToTableName(p.Determinant),
				Detail: "non-superkey determinant repartitioned",
			})
		}
	}
	tables = normalizeToBCNF(tables, deps)
	if level == BCNF {
		return finishExplain(trace, tables, start)
	}

	for _, t := range tables {
		for _, p := range multiValuedDependencies(t, deps) {
			trace.Add(plan.Node{
				Rule: "4NF", Determinant: p.Determinant, Column: p.Column,
				Table:  compositeTableName(p.Determinant, p.Column),
				Detail: "multi-valued dependency split into a binary table",
			})
		}
	}
	tables = normalizeTo4NF(tables, deps)
	if level == FourNF {
		return finishExplain(trace, tables, start)
	}

	for _, t := range tables {
		for _, tr := range joinDependencies(t, deps) {
			trace.Add(plan.Node{
				Rule: "5NF", Determinant: tr.A, Column: fmt.Sprintf("%s,%s", tr.B, tr.C),
				Table:  fmt.Sprintf("%s, %s, %s", compositeTableName(tr.A, tr.B), compositeTableName(tr.A, tr.C), compositeTableName(tr.B, tr.C)),
				Detail: "join dependency materialized as three binary tables",
			})
		}
	}
	tables = normalizeTo5NF(tables, deps)
	return finishExplain(trace, tables, start)
}

func describe1NFNode(needsKey, needsNonNull bool, keyCols int) string {
	switch {
	case needsKey && needsNonNull:
		return fmt.Sprintf("no declared key; a key was fabricated from %d column(s), and at least one nullable column was rewritten to NOT NULL", keyCols)
	case needsKey:
		return fmt.Sprintf("no declared key; a key was fabricated from %d column(s)", keyCols)
	case needsNonNull:
		return "at least one nullable column rewritten to NOT NULL"
	default:
		return "already in 1NF"
	}
}

func finishExplain(trace *plan.Trace, tables []*model.Table, start time.Time) ([]*model.Table, *plan.Trace) {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	trace.Finish(names)
	trace.Elapsed = time.Since(start)
	return tables, trace
}
