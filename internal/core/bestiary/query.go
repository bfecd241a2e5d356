// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"fmt"
	"strings"
)

// Predicate is one node of a small SQL expression tree. Every filterable
// attribute renders through one of these constructors rather than through
// string-spliced WHERE clauses, so user-controlled values always travel as
// bound parameters.
type Predicate interface {
	render(args *[]any) string
}

// InList renders "<column> IN (?, ?, ...)". An empty Values slice renders
// to the constant "1=1", since empty value-sets mean the filter key was
// not supplied and should not narrow the result set.
type InList struct {
	Column string
	Values []any
}

func (p InList) render(args *[]any) string {
	if len(p.Values) == 0 {
		return "1=1"
	}
	placeholders := make([]string, len(p.Values))
	for i, v := range p.Values {
		placeholders[i] = "?"
		*args = append(*args, v)
	}
	return fmt.Sprintf("%s IN (%s)", p.Column, strings.Join(placeholders, ", "))
}

// Between renders "<column> >= ? AND <column> <= ?".
type Between struct {
	Column string
	Lower  any
	Upper  any
}

func (p Between) render(args *[]any) string {
	*args = append(*args, p.Lower, p.Upper)
	return fmt.Sprintf("(%s >= ? AND %s <= ?)", p.Column, p.Column)
}

// Equals renders "<column> = ?".
type Equals struct {
	Column string
	Value  any
}

func (p Equals) render(args *[]any) string {
	*args = append(*args, p.Value)
	return fmt.Sprintf("%s = ?", p.Column)
}

// SubSelectTraits renders a membership test against the trait junction
// table: the creature id column must appear among the ids whose associated
// trait names intersect the requested set. The association table's trait
// column stores the trait name directly (the trait table has no separate
// numeric id), mirroring the source's join on name rather than a surrogate key.
type SubSelectTraits struct {
	IDColumn                    string
	AssociationTable             string
	AssociationCreatureIDColumn string
	AssociationTraitNameColumn  string
	TraitTable                  string
	TraitNameColumn             string
	Names                       []string
}

func (p SubSelectTraits) render(args *[]any) string {
	if len(p.Names) == 0 {
		return "1=1"
	}
	placeholders := make([]string, len(p.Names))
	for i, name := range p.Names {
		placeholders[i] = "?"
		*args = append(*args, name)
	}
	return fmt.Sprintf(
		`%s IN (SELECT tcat.%s FROM %s tcat RIGHT JOIN (SELECT %s FROM %s WHERE %s IN (%s)) tt ON tcat.%s = tt.%s GROUP BY tcat.%s)`,
		p.IDColumn,
		p.AssociationCreatureIDColumn,
		p.AssociationTable,
		p.TraitNameColumn,
		p.TraitTable,
		p.TraitNameColumn,
		strings.Join(placeholders, ", "),
		p.AssociationTraitNameColumn,
		p.TraitNameColumn,
		p.AssociationCreatureIDColumn,
	)
}

// RenderWhere joins every non-nil predicate with AND and returns the clause
// body (without the leading "WHERE") plus the accumulated bound arguments.
func RenderWhere(predicates ...Predicate) (string, []any) {
	var args []any
	clauses := make([]string, 0, len(predicates))
	for _, p := range predicates {
		if p == nil {
			continue
		}
		clauses = append(clauses, p.render(&args))
	}
	if len(clauses) == 0 {
		return "1=1", args
	}
	return strings.Join(clauses, " AND "), args
}
