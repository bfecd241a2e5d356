// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hazard

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira/pkg/pagination"
)

// Service is the hazard catalog's business-logic layer.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a hazard catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the requested cursor window of hazards matching query, plus
// pagination metadata. next, when non-nil, is wired into the response
// metadata's Next link.
func (s *Service) List(ctx context.Context, query ListQuery, next *string) ([]*Hazard, pagination.Meta, error) {
	hazards, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	params := pagination.Params{Cursor: query.Cursor, PageSize: query.PageSize}
	if !params.HasMore(total) {
		next = nil
	}
	return hazards, pagination.NewMeta(params, total, next), nil
}

// Get returns one hazard by id.
func (s *Service) Get(ctx context.Context, id int64) (*Hazard, error) {
	return s.repo.GetByID(ctx, id)
}

// Enumerate returns the distinct values of one enumerable facet.
func (s *Service) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	return s.repo.Enumerate(ctx, facet)
}
