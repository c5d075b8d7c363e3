package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// normalizeTo5NF implements the 5NF decomposition rule of §4.5.8, run
// independently over every table carried forward from 4NF. Per the
// construction recorded in DESIGN.md, each join-dependency triple is
// materialized as three binary tables before the participating columns
// are stripped from the originating table in a second pass.
func normalizeTo5NF(tables []*model.Table, deps *model.DependencyManager) []*model.Table {
	var out []*model.Table
	for _, t := range tables {
		out = append(out, decompose5NF(t, deps)...)
	}
	return out
}

func decompose5NF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	triples := joinDependencies(t, deps)
	if len(triples) == 0 {
		return []*model.Table{t}
	}

	var extra []*model.Table
	strip := map[string]bool{}

	makeBinary := func(x, y string) *model.Table {
		bin := model.NewTable(compositeTableName(x, y))
		if xCol, ok := t.Column(x); ok {
			bin.AddColumn(xCol)
		}
		if yCol, ok := t.Column(y); ok {
			bin.AddColumn(yCol)
		}
		bin.AddPrimaryKey(x)
		bin.AddPrimaryKey(y)
		return bin
	}

	for _, tr := range triples {
		extra = append(extra, makeBinary(tr.A, tr.B), makeBinary(tr.A, tr.C), makeBinary(tr.B, tr.C))
		strip[tr.A], strip[tr.B], strip[tr.C] = true, true, true
	}

	// Second pass: strip the participating columns and key-memberships
	// from the originating table now that every binary table has a copy.
	for col := range strip {
		t.RemovePrimaryKey(col)
		t.RemoveColumnByName(col)
	}

	if hasNonKeyColumns(t) {
		return append([]*model.Table{t}, extra...)
	}
	return extra
}
