// Package normalizer classifies the dependencies declared against a parsed
// table and applies successive relational decompositions until the table
// satisfies a requested normal form.
package normalizer

import (
	"github.com/mjmoore-dev/dbnormalizer/pkg/logger"
	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

// Level is a target normal form.
type Level int

const (
	OneNF Level = iota + 1
	TwoNF
	ThreeNF
	BCNF
	FourNF
	FiveNF
)

var levelNames = map[Level]string{
	OneNF:   "1NF",
	TwoNF:   "2NF",
	ThreeNF: "3NF",
	BCNF:    "BCNF",
	FourNF:  "4NF",
	FiveNF:  "5NF",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel maps the CLI's single-character form argument to a Level, per
// the form ∈ {1,2,3,B,4,5} surface from the external-interfaces contract.
func ParseLevel(form string) (Level, bool) {
	switch form {
	case "1":
		return OneNF, true
	case "2":
		return TwoNF, true
	case "3":
		return ThreeNF, true
	case "B", "b":
		return BCNF, true
	case "4":
		return FourNF, true
	case "5":
		return FiveNF, true
	default:
		return 0, false
	}
}

// Pair is a (determinant, column) relationship flagged by one of the
// detection functions in detect.go.
type Pair struct {
	Determinant string
	Column      string
}

// Normalize runs the table through the decomposition cascade up to level,
// returning the resulting list of tables. The input table is never
// mutated; every step works against a cloned copy, consistent with the
// normalizer being purely functional from the caller's perspective.
func Normalize(table *model.Table, deps *model.DependencyManager, level Level) ([]*model.Table, error) {
	logger.WithFields(logger.Fields{"table": table.Name, "target": level}).Debug("normalizer: starting")

	tables := normalizeTo1NF(table.Clone(), deps)
	logger.Debugf("normalizer: 1NF step produced %d table(s)", len(tables))
	if level == OneNF {
		return tables, nil
	}

	tables = normalizeTo2NF(tables, deps)
	logger.Debugf("normalizer: 2NF step produced %d table(s)", len(tables))
	if level == TwoNF {
		return tables, nil
	}

	tables = normalizeTo3NF(tables, deps)
	logger.Debugf("normalizer: 3NF step produced %d table(s)", len(tables))
	if level == ThreeNF {
		return tables, nil
	}

	tables = normalizeToBCNF(tables, deps)
	logger.Debugf("normalizer: BCNF step produced %d table(s)", len(tables))
	if level == BCNF {
		return tables, nil
	}

	tables = normalizeTo4NF(tables, deps)
	logger.Debugf("normalizer: 4NF step produced %d table(s)", len(tables))
	if level == FourNF {
		return tables, nil
	}

	tables = normalizeTo5NF(tables, deps)
	logger.Debugf("normalizer: 5NF step produced %d table(s)", len(tables))
	return tables, nil
}

// findTable returns the table named name within tables, or nil.
func findTable(tables []*model.Table, name string) *model.Table {
	for _, t := range tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// dropTable removes the table named name from tables.
func dropTable(tables []*model.Table, name string) []*model.Table {
	out := tables[:0]
	for _, t := range tables {
		if t.Name != name {
			out = append(out, t)
		}
	}
	return out
}

// hasNonKeyColumns reports whether t carries any column that is not a
// member of its own primary key.
func hasNonKeyColumns(t *model.Table) bool {
	for _, c := range t.Columns {
		if !t.HasPrimaryKeyColumn(c.Name) {
			return true
		}
	}
	return false
}
