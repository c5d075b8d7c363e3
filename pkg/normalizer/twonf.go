package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// normalizeTo2NF implements the 2NF decomposition rule of §4.5.8, run
// independently over every table produced by the 1NF step.
func normalizeTo2NF(tables []*model.Table, deps *model.DependencyManager) []*model.Table {
	var out []*model.Table
	for _, t := range tables {
		out = append(out, decompose2NF(t, deps)...)
	}
	return out
}

func decompose2NF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	pairs := partialDependencies(t, deps)
	if len(pairs) == 0 {
		return []*model.Table{t}
	}

	// us holds, for every PK column that gained at least one partial
	// dependent, the side table created for it (first occurrence order).
	us := make(map[string]*model.Table)
	var order []string

	for _, p := range pairs {
		u, ok := us[p.Determinant]
		if !ok {
			u = model.NewTable(model.ToTableName(p.Determinant))
			if pkCol, ok := t.Column(p.Determinant); ok {
				u.AddColumn(pkCol)
			}
			u.AddPrimaryKey(p.Determinant)
			us[p.Determinant] = u
			order = append(order, p.Determinant)
		}

		if col, ok := t.RemoveColumnByName(p.Column); ok {
			u.AddColumn(col)
		}
	}

	// Retained transitive dependencies: if the determinant of a
	// transitive pair now lives in one of the side tables, its
	// dependent column follows it there rather than staying behind in T.
	for _, tp := range transitiveDependencies(t, deps) {
		for _, pk := range order {
			u := us[pk]
			if !u.HasColumn(tp.Determinant) {
				continue
			}
			if col, ok := t.RemoveColumnByName(tp.Column); ok {
				u.AddColumn(col)
			}
			break
		}
	}

	result := make([]*model.Table, 0, len(order)+2)
	keepT := hasNonKeyColumns(t)
	if keepT {
		result = append(result, t)
	}
	for _, pk := range order {
		result = append(result, us[pk])
	}

	if len(t.PrimaryKey) >= 2 && len(order) > 0 {
		bridge := model.NewTable(compositeTableName(t.PrimaryKey...))
		for _, pk := range t.PrimaryKey {
			if col, ok := t.Column(pk); ok {
				bridge.AddColumn(col)
			} else if u, ok := us[pk]; ok {
				if col, ok := u.Column(pk); ok {
					bridge.AddColumn(col)
				}
			}
			bridge.AddPrimaryKey(pk)

			if u, ok := us[pk]; ok {
				bridge.AddForeignKey(model.ForeignKey{ColumnName: pk, ReferencedTable: u.Name, ReferencedColumn: pk})
			} else if keepT {
				bridge.AddForeignKey(model.ForeignKey{ColumnName: pk, ReferencedTable: t.Name, ReferencedColumn: pk})
			}
		}
		result = append(result, bridge)
	}

	return result
}
