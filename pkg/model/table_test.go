package model

import "testing"

func TestAddColumnAndLookup(t *testing.T) {
	tbl := NewTable("Orders")
	tbl.AddColumn(Column{Name: "orderId", Def: ColumnDef{DataType: "INT"}})
	tbl.AddColumn(Column{Name: "customerId", Def: ColumnDef{DataType: "INT"}})

	if !tbl.HasColumn("orderId") {
		t.Fatal("expected orderId to be present")
	}
	if tbl.HasColumn("missing") {
		t.Fatal("did not expect missing column to be present")
	}
	if idx := tbl.ColumnIndex("customerId"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
}

func TestRemoveColumnByName(t *testing.T) {
	tbl := NewTable("Orders")
	tbl.AddColumn(Column{Name: "a", Def: ColumnDef{DataType: "INT"}})
	tbl.AddColumn(Column{Name: "b", Def: ColumnDef{DataType: "INT"}})

	col, ok := tbl.RemoveColumnByName("a")
	if !ok || col.Name != "a" {
		t.Fatalf("expected to remove column a, got %v, %v", col, ok)
	}
	if len(tbl.Columns) != 1 || tbl.Columns[0].Name != "b" {
		t.Fatalf("expected only b to remain, got %v", tbl.Columns)
	}
	if _, ok := tbl.RemoveColumnByName("a"); ok {
		t.Fatal("expected second removal of a to report false")
	}
}

func TestPrimaryKeyIsIdempotent(t *testing.T) {
	tbl := NewTable("Orders")
	tbl.AddPrimaryKey("orderId")
	tbl.AddPrimaryKey("orderId")
	if len(tbl.PrimaryKey) != 1 {
		t.Fatalf("expected AddPrimaryKey to be idempotent, got %v", tbl.PrimaryKey)
	}
	if !tbl.RemovePrimaryKey("orderId") {
		t.Fatal("expected to remove orderId from primary key")
	}
	if tbl.HasPrimaryKeyColumn("orderId") {
		t.Fatal("expected orderId to no longer be a key column")
	}
}

func TestToTableName(t *testing.T) {
	cases := map[string]string{
		"orderId":   "OrderIdTable",
		"productId": "ProductIdTable",
		"":          "Table",
	}
	for in, want := range cases {
		if got := ToTableName(in); got != want {
			t.Errorf("ToTableName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tbl := NewTable("Orders")
	tbl.AddColumn(Column{Name: "a", Def: ColumnDef{DataType: "INT"}})
	tbl.AddPrimaryKey("a")

	clone := tbl.Clone()
	clone.AddColumn(Column{Name: "b", Def: ColumnDef{DataType: "INT"}})
	clone.RemovePrimaryKey("a")

	if len(tbl.Columns) != 1 {
		t.Fatalf("mutating the clone's columns affected the original: %v", tbl.Columns)
	}
	if !tbl.HasPrimaryKeyColumn("a") {
		t.Fatal("mutating the clone's primary key affected the original")
	}
}

func TestColumnDefEqual(t *testing.T) {
	size5 := 5
	size10 := 10
	a := ColumnDef{DataType: "VARCHAR", Size: &size5}
	b := ColumnDef{DataType: "VARCHAR", Size: &size5}
	c := ColumnDef{DataType: "VARCHAR", Size: &size10}

	if !a.Equal(b) {
		t.Fatal("expected equal ColumnDefs with same size to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected ColumnDefs with different sizes to compare unequal")
	}
}
