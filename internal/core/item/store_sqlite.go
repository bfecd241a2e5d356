// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

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
	table schema.ItemCoreTable
}

// NewSQLiteRepository constructs an item repository for one game system.
func NewSQLiteRepository(db *sql.DB, gsPrefix string) Repository {
	return &sqliteRepository{db: db, table: schema.ItemCore(gsPrefix)}
}

func (r *sqliteRepository) columns() Columns {
	return Columns{
		Level:    r.table.Level,
		ItemType: r.table.ItemType,
		Rarity:   r.table.Rarity,
		Source:   r.table.Source,
		Remaster: r.table.Remaster,
	}
}

func (r *sqliteRepository) List(ctx context.Context, query ListQuery) ([]*Item, int, error) {
	where, args := query.Filter.Build(r.columns())

	var total int
	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", r.table.Table, where)
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "item: count")
	}
	if total == 0 {
		return []*Item{}, 0, nil
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
		return nil, 0, dberr.Wrap(err, "item: list")
	}
	defer rows.Close()

	items, err := scanAll(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "item: scan")
	}
	return items, total, nil
}

// sortFieldColumn maps the catalog's public sort_by keys to the item
// table's underlying columns, falling back to a raw column-name match and
// then to Level for anything unrecognized.
func sortFieldColumn(table schema.ItemCoreTable, field string) string {
	switch field {
	case "Id":
		return table.ID
	case "Name":
		return table.Name
	case "Level":
		return table.Level
	case "Type":
		return table.ItemType
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

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	querySQL := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", strings.Join(r.table.Columns(), ", "), r.table.Table, r.table.ID)
	i, err := scanOne(r.db.QueryRowContext(ctx, querySQL, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("Item")
		}
		return nil, dberr.Wrap(err, "item: get")
	}
	return i, nil
}

// Sample returns up to n items matching filter, ordered randomly. SQLite's
// RANDOM() ordering function is used rather than an application-level
// shuffle so the resampling-with-replacement behavior the shop generator
// needs (the same row may legitimately be drawn more than once across
// separate Sample calls) stays a single round-trip per bucket fill.
func (r *sqliteRepository) Sample(ctx context.Context, filter Filter, n int) ([]*Item, error) {
	if n <= 0 {
		return nil, nil
	}
	where, args := filter.Build(r.columns())
	querySQL := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY RANDOM() LIMIT ?",
		strings.Join(r.table.Columns(), ", "), r.table.Table, where,
	)
	rows, err := r.db.QueryContext(ctx, querySQL, append(append([]any{}, args...), n)...)
	if err != nil {
		return nil, dberr.Wrap(err, "item: sample")
	}
	defer rows.Close()
	return scanAll(rows)
}

// Enumerate returns the distinct values of one enumerable facet.
func (r *sqliteRepository) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	var column string
	switch facet {
	case FacetRarity:
		column = r.table.Rarity
	case FacetSource:
		column = r.table.Source
	case FacetType:
		column = r.table.ItemType
	default:
		return nil, apperr.ValidationError("unknown enumeration facet")
	}

	querySQL := fmt.Sprintf("SELECT DISTINCT %s FROM %s WHERE %s != '' ORDER BY %s ASC", column, r.table.Table, column, column)
	rows, err := r.db.QueryContext(ctx, querySQL)
	if err != nil {
		return nil, dberr.Wrap(err, "item: enumerate "+column)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, dberr.Wrap(err, "item: scan enumeration value")
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOne(scanner rowScanner) (*Item, error) {
	var i Item
	err := scanner.Scan(
		&i.ID, &i.Name, &i.Bulk, &i.Quantity, &i.BaseItem, &i.Category, &i.ItemGroup,
		&i.Description, &i.Hardness, &i.HP, &i.Level, &i.Price, &i.Usage, &i.ItemType,
		&i.Rarity, &i.Size, &i.Source, &i.License, &i.Remaster,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func scanAll(rows *sql.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		i, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
