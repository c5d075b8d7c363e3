package normalizer

import "github.com/mjmoore-dev/dbnormalizer/pkg/model"

// partialDependencies implements §4.5.3: a pair (pk, c) is partial iff c is
// not determined by every primary-key column of t.
func partialDependencies(t *model.Table, deps *model.DependencyManager) []Pair {
	if len(t.PrimaryKey) < 2 {
		return nil
	}

	// pkDeps[pk] = ordered, deduplicated RHS columns of pk's row that are
	// not themselves primary-key columns.
	pkDeps := make(map[string][]string, len(t.PrimaryKey))
	for _, pk := range t.PrimaryKey {
		row, ok := deps.Row(pk)
		if !ok {
			continue
		}
		var rhs []string
		seen := map[string]bool{}
		for _, c := range append(append([]string{}, row.Singles...), row.Multis...) {
			if t.HasPrimaryKeyColumn(c) || seen[c] {
				continue
			}
			seen[c] = true
			rhs = append(rhs, c)
		}
		pkDeps[pk] = rhs
	}

	count := make(map[string]int)
	for _, pk := range t.PrimaryKey {
		for _, c := range pkDeps[pk] {
			count[c]++
		}
	}

	var pairs []Pair
	for _, pk := range t.PrimaryKey {
		for _, c := range pkDeps[pk] {
			if count[c] < len(t.PrimaryKey) {
				pairs = append(pairs, Pair{Determinant: pk, Column: c})
			}
		}
	}
	return pairs
}

// transitiveDependencies implements §4.5.4: for every row whose
// determinant is not a primary-key column of t, every single-valued RHS
// that is also not a primary-key column yields a transitive pair.
func transitiveDependencies(t *model.Table, deps *model.DependencyManager) []Pair {
	var pairs []Pair
	for _, det := range deps.Determinants() {
		if !t.HasColumn(det) || t.HasPrimaryKeyColumn(det) {
			continue
		}
		row, _ := deps.Row(det)
		for _, rhs := range row.Singles {
			if t.HasColumn(rhs) && !t.HasPrimaryKeyColumn(rhs) {
				pairs = append(pairs, Pair{Determinant: det, Column: rhs})
			}
		}
	}
	return pairs
}

// bcnfViolations implements §4.5.5: a non-key determinant X that
// single-valued-determines a column Y which is itself a primary-key
// column of t violates BCNF.
func bcnfViolations(t *model.Table, deps *model.DependencyManager) []Pair {
	var pairs []Pair
	for _, det := range deps.Determinants() {
		if !t.HasColumn(det) || t.HasPrimaryKeyColumn(det) {
			continue
		}
		row, _ := deps.Row(det)
		for _, rhs := range row.Singles {
			if t.HasPrimaryKeyColumn(rhs) {
				pairs = append(pairs, Pair{Determinant: det, Column: rhs})
			}
		}
	}
	return pairs
}

// multiValuedDependencies implements §4.5.6, preserving the stricter
// source condition that a singleton multis list is not a 4NF violation
// even under a composite key (spec.md §9's explicit instruction).
func multiValuedDependencies(t *model.Table, deps *model.DependencyManager) []Pair {
	if len(t.PrimaryKey) < 2 {
		return nil
	}
	var pairs []Pair
	for _, det := range deps.Determinants() {
		if !t.HasColumn(det) {
			continue
		}
		row, _ := deps.Row(det)
		if len(row.Multis) <= 1 {
			continue
		}
		for _, m := range row.Multis {
			if t.HasColumn(m) {
				pairs = append(pairs, Pair{Determinant: det, Column: m})
			}
		}
	}
	return pairs
}

// joinTriple is a join-dependency finding: three column names that
// participate in a cyclic chain of single-valued determinations.
type joinTriple struct {
	A, B, C string
}

// joinDependencies implements §4.5.7.
func joinDependencies(t *model.Table, deps *model.DependencyManager) []joinTriple {
	singlesOf := make(map[string][]string)
	for _, det := range deps.Determinants() {
		if !t.HasColumn(det) {
			continue
		}
		row, _ := deps.Row(det)
		for _, s := range row.Singles {
			if t.HasColumn(s) {
				singlesOf[det] = append(singlesOf[det], s)
			}
		}
	}

	var triples []joinTriple
	for _, a := range deps.Determinants() {
		as := singlesOf[a]
		if len(as) < 2 {
			continue
		}
		for _, b := range as {
			bs, isDet := singlesOf[b]
			if !isDet {
				continue
			}
			for _, c := range bs {
				if containsStr(as, c) {
					triples = append(triples, joinTriple{A: a, B: b, C: c})
				}
			}
		}
	}
	return triples
}

func containsStr(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
