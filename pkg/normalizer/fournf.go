package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// normalizeTo4NF implements the 4NF decomposition rule of §4.5.8, run
// independently over every table carried forward from BCNF.
func normalizeTo4NF(tables []*model.Table, deps *model.DependencyManager) []*model.Table {
	var out []*model.Table
	for _, t := range tables {
		out = append(out, decompose4NF(t, deps)...)
	}
	return out
}

func decompose4NF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	pairs := multiValuedDependencies(t, deps)
	if len(pairs) == 0 {
		return []*model.Table{t}
	}

	var extra []*model.Table
	for _, p := range pairs {
		xCol, ok := t.Column(p.Determinant)
		if !ok {
			panic("normalizer: 4NF determinant column missing from source table")
		}
		yCol, ok := t.RemoveColumnByName(p.Column)
		if !ok {
			// Already consumed by a prior pair sharing the same RHS.
			continue
		}
		t.RemovePrimaryKey(p.Column)

		bin := model.NewTable(compositeTableName(p.Determinant, p.Column))
		bin.AddColumn(xCol)
		bin.AddColumn(yCol)
		bin.AddPrimaryKey(p.Determinant)
		bin.AddPrimaryKey(p.Column)
		extra = append(extra, bin)
	}

	if hasNonKeyColumns(t) {
		return append([]*model.Table{t}, extra...)
	}
	return extra
}
