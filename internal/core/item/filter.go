// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

// Filter narrows an item list query. Every field is optional.
type Filter struct {
	Levels    []int
	ItemTypes []ItemType
	Rarities  []string
	Sources   []string
	Remaster  *bool
}

// Columns carries the concrete column names the filter predicates bind to.
type Columns struct {
	Level    string
	ItemType string
	Rarity   string
	Source   string
	Remaster string
}

type clause struct {
	sql  string
	args []any
}

// Build renders f into a WHERE body plus its bound arguments.
func (f Filter) Build(cols Columns) (string, []any) {
	var clauses []clause

	if c := inList(cols.Level, intsToAny(f.Levels)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.ItemType, itemTypesToAny(f.ItemTypes)); c != nil {
		clauses = append(clauses, *c)
	}
	if c := inList(cols.Rarity, stringsToAny(f.Rarities)); c != nil {
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

// WithItemType returns a copy of f narrowed to a single item type, used by
// the shop generator to query one category bucket at a time.
func (f Filter) WithItemType(t ItemType) Filter {
	narrowed := f
	narrowed.ItemTypes = []ItemType{t}
	return narrowed
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

func itemTypesToAny(values []ItemType) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
