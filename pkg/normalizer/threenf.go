package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// normalizeTo3NF implements the 3NF decomposition rule of §4.5.8, run
// independently over every table carried forward from 2NF.
func normalizeTo3NF(tables []*model.Table, deps *model.DependencyManager) []*model.Table {
	var out []*model.Table
	for _, t := range tables {
		out = append(out, decompose3NF(t, deps)...)
	}
	return out
}

func decompose3NF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	var extra []*model.Table
	vs := make(map[string]*model.Table)

	for {
		pairs := transitiveDependencies(t, deps)
		if len(pairs) == 0 {
			break
		}
		progressed := false

		for _, p := range pairs {
			v, ok := vs[p.Determinant]
			if !ok {
				v = model.NewTable(model.ToTableName(p.Determinant))
				xCol, ok := t.Column(p.Determinant)
				if !ok {
					panic("normalizer: 3NF determinant column missing from source table")
				}
				v.AddColumn(xCol)
				v.AddPrimaryKey(p.Determinant)
				vs[p.Determinant] = v
				extra = append(extra, v)

				t.AddForeignKey(model.ForeignKey{
					ColumnName:       p.Determinant,
					ReferencedTable:  v.Name,
					ReferencedColumn: p.Determinant,
				})
			}

			col, ok := t.RemoveColumnByName(p.Column)
			if !ok {
				// Already relocated by an earlier iteration; detection
				// is re-run from scratch so this just means no-op.
				continue
			}
			v.AddColumn(col)
			progressed = true
		}

		if !progressed {
			break
		}
	}

	return append([]*model.Table{t}, extra...)
}
