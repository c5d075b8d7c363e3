package normalizer

import (
	"testing"

	"github.com/mjmoore-dev/dbnormalizer/pkg/model"
)

func col(name, dataType string, nullable bool) model.Column {
	return model.Column{Name: name, Def: model.ColumnDef{DataType: dataType, Nullable: nullable}}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"1": OneNF, "2": TwoNF, "3": ThreeNF, "B": BCNF, "b": BCNF, "4": FourNF, "5": FiveNF}
	for form, want := range cases {
		got, ok := ParseLevel(form)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, true", form, got, ok, want)
		}
	}
	if _, ok := ParseLevel("6"); ok {
		t.Error("expected ParseLevel(\"6\") to report false")
	}
}

// S1: a table already in 1NF with a single-column key and no partial,
// transitive, or multi-valued dependencies is returned unchanged at every
// level.
func TestNormalizeIdentityAtAnyLevel(t *testing.T) {
	tbl := model.NewTable("Widget")
	tbl.AddColumn(col("widgetId", "INT", false))
	tbl.AddColumn(col("name", "VARCHAR", false))
	tbl.AddPrimaryKey("widgetId")

	deps := model.NewDependencyManager()
	row := deps.RowOrCreate("widgetId")
	row.AddSingle("name")

	tables, err := Normalize(tbl, deps, FiveNF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected the table to survive decomposition untouched, got %d tables", len(tables))
	}
	if tables[0].Name != "Widget" || len(tables[0].Columns) != 2 {
		t.Fatalf("unexpected result: %+v", tables[0])
	}
}

// S2: Order(orderId, productId, productName, qty) with a composite key and
// productId -> productName partial dependency decomposes into the residual
// Order table, a ProductIdTable side table, and a bridging table.
func TestNormalizeTo2NFBridging(t *testing.T) {
	tbl := model.NewTable("Order")
	tbl.AddColumn(col("orderId", "INT", false))
	tbl.AddColumn(col("productId", "INT", false))
	tbl.AddColumn(col("productName", "VARCHAR", false))
	tbl.AddColumn(col("qty", "INT", false))
	tbl.AddPrimaryKey("orderId")
	tbl.AddPrimaryKey("productId")

	deps := model.NewDependencyManager()
	deps.RowOrCreate("productId").AddSingle("productName")

	tables, err := Normalize(tbl, deps, TwoNF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 3 {
		names := make([]string, len(tables))
		for i, tt := range tables {
			names[i] = tt.Name
		}
		t.Fatalf("expected 3 tables, got %d: %v", len(tables), names)
	}

	residual := findTable(tables, "Order")
	if residual == nil {
		t.Fatal("expected the residual Order table to survive (qty is not fully determined by the key)")
	}
	if !residual.HasColumn("qty") {
		t.Error("expected qty to remain on the residual table")
	}
	if residual.HasColumn("productName") {
		t.Error("expected productName to have moved off the residual table")
	}

	side := findTable(tables, "ProductIdTable")
	if side == nil {
		t.Fatal("expected a ProductIdTable side table")
	}
	if !side.HasColumn("productName") {
		t.Error("expected productName on the side table")
	}

	bridge := findTable(tables, "OrderIdProductIdTable")
	if bridge == nil {
		t.Fatal("expected a bridging table for the composite key")
	}
	if len(bridge.ForeignKeys) != 2 {
		t.Fatalf("expected the bridge to carry 2 foreign keys, got %d", len(bridge.ForeignKeys))
	}
}

// S3: a single-column-key table with a transitive dependency splits the
// determinant and its dependent column off into their own table.
func TestNormalizeTo3NFTransitiveRemoval(t *testing.T) {
	tbl := model.NewTable("Employee")
	tbl.AddColumn(col("employeeId", "INT", false))
	tbl.AddColumn(col("deptId", "INT", false))
	tbl.AddColumn(col("deptName", "VARCHAR", false))
	tbl.AddPrimaryKey("employeeId")

	deps := model.NewDependencyManager()
	deps.RowOrCreate("employeeId").AddSingle("deptId")
	deps.RowOrCreate("deptId").AddSingle("deptName")

	tables, err := Normalize(tbl, deps, ThreeNF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	residual := findTable(tables, "Employee")
	if residual == nil || residual.HasColumn("deptName") {
		t.Fatalf("expected deptName removed from Employee, got %+v", residual)
	}
	side := findTable(tables, "DeptIdTable")
	if side == nil || !side.HasColumn("deptName") {
		t.Fatalf("expected DeptIdTable carrying deptName, got %+v", side)
	}
}

// S4: a non-superkey determinant that single-valued-determines a
// primary-key column is repartitioned: the table's key swaps to the
// determinant, and the old key column moves to a new side table.
func TestNormalizeToBCNFRepartition(t *testing.T) {
	tbl := model.NewTable("Enrollment")
	tbl.AddColumn(col("studentId", "INT", false))
	tbl.AddColumn(col("courseId", "INT", false))
	tbl.AddColumn(col("instructorId", "INT", false))
	tbl.AddPrimaryKey("studentId")
	tbl.AddPrimaryKey("courseId")

	deps := model.NewDependencyManager()
	deps.RowOrCreate("instructorId").AddSingle("courseId")

	tables, err := Normalize(tbl, deps, BCNF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	main := findTable(tables, "Enrollment")
	if main == nil {
		t.Fatal("expected the Enrollment table to survive")
	}
	if !main.HasPrimaryKeyColumn("instructorId") || main.HasPrimaryKeyColumn("courseId") {
		t.Fatalf("expected the key to swap from courseId to instructorId, got %v", main.PrimaryKey)
	}

	side := findTable(tables, "InstructorIdTable")
	if side == nil || !side.HasColumn("courseId") {
		t.Fatalf("expected InstructorIdTable carrying courseId, got %+v", side)
	}
}

// S5: a composite-key table with two independent multi-valued dependencies
// off the same determinant splits into per-MVD binary tables.
func TestNormalizeTo4NFSplit(t *testing.T) {
	tbl := model.NewTable("EmployeeSkillLanguage")
	tbl.AddColumn(col("employeeId", "INT", false))
	tbl.AddColumn(col("skill", "VARCHAR", false))
	tbl.AddColumn(col("language", "VARCHAR", false))
	tbl.AddPrimaryKey("employeeId")
	tbl.AddPrimaryKey("skill")
	tbl.AddPrimaryKey("language")

	deps := model.NewDependencyManager()
	row := deps.RowOrCreate("employeeId")
	row.AddMulti("skill")
	row.AddMulti("language")

	tables, err := Normalize(tbl, deps, FourNF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if findTable(tables, "EmployeeIdSkillTable") == nil {
		t.Error("expected an EmployeeIdSkillTable binary table")
	}
	if findTable(tables, "EmployeeIdLanguageTable") == nil {
		t.Error("expected an EmployeeIdLanguageTable binary table")
	}
	if findTable(tables, "EmployeeSkillLanguage") != nil {
		t.Error("expected the original table to be dropped once it had no remaining non-key columns")
	}
}

// A lone multi-valued dependency (len(Multis) == 1) is not itself a 4NF
// violation, per the stricter condition recorded in DESIGN.md.
func TestSingletonMultiIsNotAViolation(t *testing.T) {
	tbl := model.NewTable("EmployeeSkill")
	tbl.AddColumn(col("employeeId", "INT", false))
	tbl.AddColumn(col("skill", "VARCHAR", false))
	tbl.AddPrimaryKey("employeeId")
	tbl.AddPrimaryKey("skill")

	deps := model.NewDependencyManager()
	deps.RowOrCreate("employeeId").AddMulti("skill")

	if pairs := multiValuedDependencies(tbl, deps); len(pairs) != 0 {
		t.Fatalf("expected a singleton MVD to not be flagged, got %v", pairs)
	}
}

func TestHighestFormReportsWithoutMutating(t *testing.T) {
	tbl := model.NewTable("Order")
	tbl.AddColumn(col("orderId", "INT", false))
	tbl.AddColumn(col("productId", "INT", false))
	tbl.AddColumn(col("productName", "VARCHAR", false))
	tbl.AddPrimaryKey("orderId")
	tbl.AddPrimaryKey("productId")

	deps := model.NewDependencyManager()
	deps.RowOrCreate("productId").AddSingle("productName")

	before := len(tbl.Columns)
	if got := HighestForm(tbl, deps); got != OneNF {
		t.Fatalf("expected HighestForm to report 1NF given a partial dependency, got %v", got)
	}
	if len(tbl.Columns) != before {
		t.Fatal("HighestForm must not mutate the table")
	}
}
