// Package model holds the typed intermediate representation the parser
// builds and the normalizer transforms: Table, Column, ColumnDef,
// ForeignKey, DependencyRow, and DependencyManager.
package model

import "strings"

// ColumnDef describes a column's SQL type.
type ColumnDef struct {
	DataType string // "", "INT", "INTEGER", or "VARCHAR"
	Nullable bool
	Size     *int // required for VARCHAR, optional for INT/INTEGER, nil otherwise
}

// Equal reports whether two ColumnDefs have identical fields.
func (d ColumnDef) Equal(other ColumnDef) bool {
	if d.DataType != other.DataType || d.Nullable != other.Nullable {
		return false
	}
	if (d.Size == nil) != (other.Size == nil) {
		return false
	}
	return d.Size == nil || *d.Size == *other.Size
}

// Column is a named column of a Table.
type Column struct {
	Name string
	Def  ColumnDef
}

// Equal reports whether two Columns have identical fields.
func (c Column) Equal(other Column) bool {
	return c.Name == other.Name && c.Def.Equal(other.Def)
}

// ForeignKey is a reference from one column of the owning Table to a
// primary-key column of another table.
type ForeignKey struct {
	ColumnName       string
	ReferencedTable  string
	ReferencedColumn string
}

// Table is an ordered sequence of columns together with a name, an
// if-not-exists flag, an ordered primary key, and a set of foreign keys.
//
// Invariants (enforced by the parser, assumed by the normalizer): every
// primary-key name and every foreign-key ColumnName refers to an existing
// column of this table; column names are unique within the table.
type Table struct {
	Name        string
	IfNotExists bool
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
}

// NewTable creates an empty table with the given name.
func NewTable(name string) *Table {
	return &Table{Name: name}
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the index of the column named name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the column named name and whether it was found.
func (t *Table) Column(name string) (Column, bool) {
	if i := t.ColumnIndex(name); i >= 0 {
		return t.Columns[i], true
	}
	return Column{}, false
}

// AddColumn appends col to the table.
func (t *Table) AddColumn(col Column) {
	t.Columns = append(t.Columns, col)
}

// RemoveColumn removes the first column equal to col, by value equality.
// It returns whether a column was removed. Column removal walks the
// table's current column slice, not any pre-decomposition snapshot.
func (t *Table) RemoveColumn(col Column) bool {
	for i, c := range t.Columns {
		if c.Equal(col) {
			t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveColumnByName removes the column named name, if present.
func (t *Table) RemoveColumnByName(name string) (Column, bool) {
	if i := t.ColumnIndex(name); i >= 0 {
		col := t.Columns[i]
		t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
		return col, true
	}
	return Column{}, false
}

// HasPrimaryKeyColumn reports whether name is a member of the primary key.
func (t *Table) HasPrimaryKeyColumn(name string) bool {
	for _, k := range t.PrimaryKey {
		if k == name {
			return true
		}
	}
	return false
}

// AddPrimaryKey appends name to the primary key if not already present.
func (t *Table) AddPrimaryKey(name string) {
	if !t.HasPrimaryKeyColumn(name) {
		t.PrimaryKey = append(t.PrimaryKey, name)
	}
}

// RemovePrimaryKey removes name from the primary key, if present.
func (t *Table) RemovePrimaryKey(name string) bool {
	for i, k := range t.PrimaryKey {
		if k == name {
			t.PrimaryKey = append(t.PrimaryKey[:i], t.PrimaryKey[i+1:]...)
			return true
		}
	}
	return false
}

// AddForeignKey appends fk to the table's foreign keys.
func (t *Table) AddForeignKey(fk ForeignKey) {
	t.ForeignKeys = append(t.ForeignKeys, fk)
}

// ToTableName converts a column name c into the table name that a
// decomposition rule derives for it: upper-case the first character and
// append "Table".
func ToTableName(c string) string {
	if c == "" {
		return "Table"
	}
	return strings.ToUpper(c[:1]) + c[1:] + "Table"
}

// Clone returns a deep copy of the table, used by decomposition rules that
// need to branch a table's state without mutating the caller's original.
func (t *Table) Clone() *Table {
	clone := &Table{
		Name:        t.Name,
		IfNotExists: t.IfNotExists,
		Columns:     append([]Column(nil), t.Columns...),
		PrimaryKey:  append([]string(nil), t.PrimaryKey...),
		ForeignKeys: append([]ForeignKey(nil), t.ForeignKeys...),
	}
	for i, c := range clone.Columns {
		if c.Def.Size != nil {
			size := *c.Def.Size
			clone.Columns[i].Def.Size = &size
		}
	}
	return clone
}
