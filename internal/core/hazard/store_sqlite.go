// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/taibuivan/yomira/internal/platform/apperr"
	"github.com/taibuivan/yomira/internal/platform/database/schema"
	"github.com/taibuivan/yomira/internal/platform/dberr"
)

type sqliteRepository struct {
	db    *sql.DB
	table schema.HazardCoreTable
}

// NewSQLiteRepository constructs a hazard repository for one game system.
func NewSQLiteRepository(db *sql.DB, gsPrefix string) Repository {
	return &sqliteRepository{db: db, table: schema.HazardCore(gsPrefix)}
}

func (r *sqliteRepository) columns() Columns {
	return Columns{
		Level:      r.table.Level,
		Complexity: r.table.Complexity,
		Rarity:     r.table.Rarity,
		Size:       r.table.Size,
		Source:     r.table.Source,
		Remaster:   r.table.Remaster,
	}
}

func (r *sqliteRepository) List(ctx context.Context, query ListQuery) ([]*Hazard, int, error) {
	where, args := query.Filter.Build(r.columns())

	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.table.Table, where)
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "hazard: count")
	}
	if total == 0 {
		return []*Hazard{}, 0, nil
	}

	sortColumn := sortFieldColumn(r.table, query.SortBy)
	direction := "DESC"
	if query.Ascending {
		direction = "ASC"
	}

	listSQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s %s",
		strings.Join(r.table.Columns(), ", "), r.table.Table, where, sortColumn, direction,
	)
	listArgs := append([]any{}, args...)
	if query.PageSize >= 0 {
		listSQL += " LIMIT ? OFFSET ?"
		listArgs = append(listArgs, query.PageSize, query.Cursor)
	} else if query.Cursor > 0 {
		listSQL += " LIMIT -1 OFFSET ?"
		listArgs = append(listArgs, query.Cursor)
	}
	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "hazard: list")
	}
	defer rows.Close()

	var hazards []*Hazard
	for rows.Next() {
		h, err := scanHazard(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "hazard: scan")
		}
		hazards = append(hazards, h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "hazard: iterate")
	}
	return hazards, total, nil
}

// sortFieldColumn maps the catalog's public sort_by keys to the hazard
// table's underlying columns, falling back to a raw column-name match and
// then to Level for anything unrecognized.
func sortFieldColumn(table schema.HazardCoreTable, field string) string {
	switch field {
	case "Id":
		return table.ID
	case "Name":
		return table.Name
	case "Level":
		return table.Level
	case "Size":
		return table.Size
	case "Hp":
		return table.HP
	case "Rarity":
		return table.Rarity
	}
	for _, col := range table.Columns() {
		if col == field {
			return col
		}
	}
	return table.Level
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Hazard, error) {
	querySQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(r.table.Columns(), ", "), r.table.Table, r.table.ID)
	h, err := scanHazard(r.db.QueryRowContext(ctx, querySQL, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("Hazard")
		}
		return nil, dberr.Wrap(err, "hazard: get")
	}
	return h, nil
}

// Enumerate returns the distinct values of one enumerable facet.
func (r *sqliteRepository) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	var column string
	switch facet {
	case FacetSize:
		column = r.table.Size
	case FacetRarity:
		column = r.table.Rarity
	case FacetSource:
		column = r.table.Source
	case FacetComplexity:
		column = r.table.Complexity
	default:
		return nil, apperr.ValidationError("unknown enumeration facet")
	}

	querySQL := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s != '' ORDER BY %s ASC", column, r.table.Table, column, column)
	rows, err := r.db.QueryContext(ctx, querySQL)
	if err != nil {
		return nil, dberr.Wrap(err, "hazard: enumerate "+column)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, dberr.Wrap(err, "hazard: scan enumeration value")
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHazard(scanner rowScanner) (*Hazard, error) {
	var h Hazard
	err := scanner.Scan(
		&h.ID, &h.Name, &h.AC, &h.Hardness, &h.HP, &h.HasHealth, &h.Complexity, &h.Level,
		&h.Rarity, &h.Size, &h.Source, &h.License, &h.Remaster, &h.SaveWill, &h.SaveReflex,
		&h.SaveFort, &h.Description, &h.Disable, &h.Reset,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
