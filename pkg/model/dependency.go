package model

// DependencyRow is one determinant's set of declared functional and
// multi-valued dependencies: determinant -> singles (single-valued, "->")
// and determinant ->> multis (multi-valued, "->>").
type DependencyRow struct {
	Determinant string
	Singles     []string
	Multis      []string
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// AddSingle appends rhs to the row's singles if not already present.
// Reports whether it was added.
func (r *DependencyRow) AddSingle(rhs string) bool {
	if containsString(r.Singles, rhs) {
		return false
	}
	r.Singles = append(r.Singles, rhs)
	return true
}

// AddMulti appends rhs to the row's multis if not already present.
// Reports whether it was added.
func (r *DependencyRow) AddMulti(rhs string) bool {
	if containsString(r.Multis, rhs) {
		return false
	}
	r.Multis = append(r.Multis, rhs)
	return true
}

// DependencyManager is an ordered set of DependencyRows, one per distinct
// determinant, plus the ordered set of column names declared by a single
// KEY: clause. It is built while parsing a dependency file and bound to
// the already-parsed Table it cross-validates against.
type DependencyManager struct {
	rows       []DependencyRow
	index      map[string]int
	PrimaryKey []string
}

// NewDependencyManager creates an empty manager.
func NewDependencyManager() *DependencyManager {
	return &DependencyManager{index: make(map[string]int)}
}

// Rows returns the dependency rows in discovery order.
func (m *DependencyManager) Rows() []DependencyRow {
	return m.rows
}

// Row returns the row for determinant, and whether it exists.
func (m *DependencyManager) Row(determinant string) (*DependencyRow, bool) {
	if i, ok := m.index[determinant]; ok {
		return &m.rows[i], true
	}
	return nil, false
}

// RowOrCreate returns the row for determinant, creating an empty one
// (appended in discovery order) if it does not yet exist. This is the one
// idempotent append operation the DependencyManager exposes for rows.
func (m *DependencyManager) RowOrCreate(determinant string) *DependencyRow {
	if i, ok := m.index[determinant]; ok {
		return &m.rows[i]
	}
	m.rows = append(m.rows, DependencyRow{Determinant: determinant})
	m.index[determinant] = len(m.rows) - 1
	return &m.rows[len(m.rows)-1]
}

// HasPrimaryKeyDeclared reports whether a KEY: clause has already been
// registered (used to detect a second, duplicate KEY: clause).
func (m *DependencyManager) HasPrimaryKeyDeclared() bool {
	return len(m.PrimaryKey) > 0
}

// AddPrimaryKey appends name to the manager's declared primary key.
func (m *DependencyManager) AddPrimaryKey(name string) {
	if !containsString(m.PrimaryKey, name) {
		m.PrimaryKey = append(m.PrimaryKey, name)
	}
}

// Determinants returns determinant names in discovery order.
func (m *DependencyManager) Determinants() []string {
	names := make([]string, len(m.rows))
	for i, r := range m.rows {
		names[i] = r.Determinant
	}
	return names
}
