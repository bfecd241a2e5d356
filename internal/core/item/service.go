// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira/pkg/pagination"
)

// Service is the item catalog's business-logic layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an item catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the requested cursor window of items matching query, plus
// pagination metadata. next, when non-nil, is wired into the response
// metadata's Next link.
func (s *Service) List(ctx context.Context, query ListQuery, next *string) ([]*Item, pagination.Meta, error) {
	items, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	params := pagination.Params{Cursor: query.Cursor, PageSize: query.PageSize}
	if !params.HasMore(total) {
		next = nil
	}
	return items, pagination.NewMeta(params, total, next), nil
}

// Get returns one item by id.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// GenerateShop builds a template-driven shop inventory.
func (s *Service) GenerateShop(ctx context.Context, req ShopRequest) (*Shop, error) {
	return GenerateShop(ctx, s.repo, req)
}

// Enumerate returns the distinct values of one enumerable facet.
func (s *Service) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	return s.repo.Enumerate(ctx, facet)
}
