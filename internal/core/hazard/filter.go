// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard

// Filter narrows a hazard list query. Every field is optional.
type Filter struct {
	Levels      []int
	Complexities []Complexity
	Rarities    []string
	Sizes       []string
	Sources     []string
	Remaster    *bool
}

// clause is one bound WHERE fragment, kept parameterized rather than
// string-spliced.
type clause struct {
	sql  string
	args []any
}

// Build renders f into a WHERE body plus its bound arguments, using the
// supplied column names for each predicate.
func (f Filter) Build(cols Columns) (string, []any) {
	var clauses []clause

	if c := inList(cols.Level, intsToAny(f.Levels)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.Complexity, complexitiesToAny(f.Complexities)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.Rarity, stringsToAny(f.Rarities)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.Size, stringsToAny(f.Sizes)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.Source, stringsToAny(f.Sources)); c != nil {
		clauses = append(clauses, *c)
	}
	if f.Remaster != nil {
		clauses = append(clauses, clause{sql: cols.Remaster + " = ?", args: []any{*f.Remaster}})
	}

	if len(clauses) == 0 {
		return "1=1", nil
	}

	var sql string
	var args []any
	for i, c := range clauses {
		if i > 0 {
			sql += " AND "
		}
		sql += c.sql
		args = append(args, c.args...)
	}
	return sql, args
}

// Columns carries the concrete column names the filter predicates bind to.
type Columns struct {
	Level      string
	Complexity string
	Rarity     string
	Size       string
	Source     string
	Remaster   string
}

func inList(column string, values []any) *clause {
	if len(values) == 0 {
		return nil
	}
	placeholders := ""
	for i := range values {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
	}
	return &clause{sql: column + " IN (" + placeholders + ")", args: values}
}

func intsToAny(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func complexitiesToAny(values []Complexity) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
