// Package emitter renders a decomposed list of tables back to CREATE
// TABLE text. It is deliberately outside the core decomposition engine:
// the normalizer yields typed tables, and emitter is the thin shell that
// turns them back into the external surface syntax.
package emitter

import (
	"fmt"
	"strings"

	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

// Table renders a single table as one CREATE TABLE statement.
func Table(t *model.Table) string {
	var b strings.Builder

	b.WriteString("CREATE TABLE ")
	if t.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	fmt.Fprintf(&b, "%s(\n", t.Name)

	lines := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
	for _, c := range t.Columns {
		lines = append(lines, "    "+columnLine(c))
	}
	if len(t.PrimaryKey) > 0 {
		lines = append(lines, "    PRIMARY KEY("+strings.Join(t.PrimaryKey, ", ")+")")
	}
	for _, fk := range t.ForeignKeys {
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.ColumnName, fk.ReferencedTable, fk.ReferencedColumn))
	}

	for i, line := range lines {
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	b.WriteString(");")
	return b.String()
}

func columnLine(c model.Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(c.Def.DataType)
	if c.Def.Size != nil {
		fmt.Fprintf(&b, "(%d)", *c.Def.Size)
	}
	b.WriteByte(' ')
	if c.Def.Nullable {
		b.WriteString("NULL")
	} else {
		b.WriteString("NOT NULL")
	}
	return b.String()
}

// Tables renders every table in ts, each as its own statement, joined by
// a single blank line -- the shape a normalization run writes to stdout
// or a file.
func Tables(ts []*model.Table) string {
	stmts := make([]string, len(ts))
	for i, t := range ts {
		stmts[i] = Table(t)
	}
	return strings.Join(stmts, "\n\n")
}
