package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// normalizeToBCNF implements the BCNF decomposition rule of §4.5.8, run
// independently over every table carried forward from 3NF.
func normalizeToBCNF(tables []*model.Table, deps *model.DependencyManager) []*model.Table {
	var out []*model.Table
	for _, t := range tables {
		out = append(out, decomposeBCNF(t, deps)...)
	}
	return out
}

func decomposeBCNF(t *model.Table, deps *model.DependencyManager) []*model.Table {
	var extra []*model.Table

	for {
		pairs := bcnfViolations(t, deps)
		if len(pairs) == 0 {
			break
		}
		p := pairs[0]

		v := model.NewTable(model.ToTableName(p.Determinant))
		xCol, ok := t.Column(p.Determinant)
		if !ok {
			panic("normalizer: BCNF determinant column missing from source table")
		}
		v.AddColumn(xCol)
		v.AddPrimaryKey(p.Determinant)

		yCol, ok := t.RemoveColumnByName(p.Column)
		if !ok {
			panic("normalizer: BCNF dependent column missing from source table")
		}
		v.AddColumn(yCol)

		if !t.RemovePrimaryKey(p.Column) {
			panic("normalizer: BCNF dependent column was not a primary-key member")
		}
		t.AddPrimaryKey(p.Determinant)
		t.AddForeignKey(model.ForeignKey{
			ColumnName:       p.Determinant,
			ReferencedTable:  v.Name,
			ReferencedColumn: p.Determinant,
		})

		extra = append(extra, v)
	}

	return append([]*model.Table{t}, extra...)
}
