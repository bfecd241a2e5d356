// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bestiary

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira/pkg/pagination"
)

// Service is the creature catalog's business-logic layer: it applies
// variant transforms and pagination on top of the raw repository reads.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a creature catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the requested cursor window of creatures matching query,
// plus pagination metadata. next, when non-nil, is wired into the response
// metadata's Next link.
func (s *Service) List(ctx context.Context, query ListQuery, next *string) ([]*Creature, pagination.Meta, error) {
	creatures, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	params := pagination.Params{Cursor: query.Cursor, PageSize: query.PageSize}
	if !params.HasMore(total) {
		next = nil
	}
	return creatures, pagination.NewMeta(params, total, next), nil
}

// Enumerate returns the distinct values of one enumerable facet.
func (s *Service) Enumerate(ctx context.Context, facet Facet) ([]string, error) {
	return s.repo.Enumerate(ctx, facet)
}

// Get returns one creature, optionally derived as a Weak/Elite variant and/or
// with proficiency-without-level applied.
func (s *Service) Get(ctx context.Context, id int64, variant Variant, pwl bool) (*Creature, *VariantData, error) {
	creature, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data := ApplyVariant(creature, variant)
	if pwl {
		data.ModifierDelta = ApplyPWL(data.ModifierDelta, creature.Level)
	}
	return creature, &data, nil
}

// RebuildRoleScores recomputes every creature's affinity percentages. Called
// once at startup after the projection is bootstrapped.
func (s *Service) RebuildRoleScores(ctx context.Context) error {
	return s.repo.RebuildRoleScores(ctx)
}
