package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// detect1NF implements §4.5.1.
func detect1NF(t *model.Table) (needsKey, needsNonNull bool) {
	needsKey = len(t.PrimaryKey) == 0
	for _, c := range t.Columns {
		if c.Def.Nullable {
			needsNonNull = true
			break
		}
	}
	return needsKey, needsNonNull
}

// nonDependentColumns returns, in column order, every column of t that
// never appears on the RHS of any declared single- or multi-valued
// dependency.
func nonDependentColumns(t *model.Table, deps *model.DependencyManager) []string {
	dependent := map[string]bool{}
	for _, det := range deps.Determinants() {
		row, _ := deps.Row(det)
		for _, c := range row.Singles {
			dependent[c] = true
		}
		for _, c := range row.Multis {
			dependent[c] = true
		}
	}

	var out []string
	for _, c := range t.Columns {
		if !dependent[c.Name] {
			out = append(out, c.Name)
		}
	}
	return out
}

// normalizeTo1NF implements §4.5.2. The resulting table is the single
// member of the returned list.
func normalizeTo1NF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	needsKey, needsNonNull := detect1NF(t)

	if needsKey {
		nonDep := nonDependentColumns(t, deps)
		if len(nonDep) == 0 {
			for _, c := range t.Columns {
				t.AddPrimaryKey(c.Name)
			}
		} else {
			for _, name := range nonDep {
				t.AddPrimaryKey(name)
			}
		}
	}

	if needsNonNull {
		for i := range t.Columns {
			t.Columns[i].Def.Nullable = false
		}
	}

	return []*model.Table{t}
}
