package normalizer

import "strings"

// titleCase upper-cases the first character of s, leaving the rest
// untouched -- the same rule model.ToTableName applies to a single column.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// compositeTableName derives the name a decomposition rule gives a table
// keyed on more than one column: concatenate each column's title-cased
// spelling and append "Table".
func compositeTableName(cols ...string) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteString(titleCase(c))
	}
	b.WriteString("Table")
	return b.String()
}
