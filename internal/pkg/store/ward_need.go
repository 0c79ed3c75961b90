package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
)

var wardNeedColumns = []string{"id", "ward", "county", "sector", "score", "data_source", "last_updated"}

// Ranking is score descending with ward name as the tie-break, so equal
// scores list deterministically and TopWardNeedsBySector stays a prefix of
// the full listing.
func wardNeedQuery(sector string) sq.SelectBuilder {
	return builder().Select(wardNeedColumns...).
		From(tableWardNeeds).
		Where(sq.Eq{"sector": sector}).
		OrderBy("score DESC", "ward ASC")
}

func (s *store) ListWardNeedsBySector(ctx context.Context, sector string) ([]*domain.WardNeed, error) {
	var needs []*domain.WardNeed
	if err := s.pool.Selectx(ctx, &needs, wardNeedQuery(sector)); err != nil {
		logger.Errorf(ctx, "ListWardNeedsBySector: %s", err.Error())
		return nil, err
	}
	return needs, nil
}

func (s *store) TopWardNeedsBySector(ctx context.Context, sector string, limit uint64) ([]*domain.WardNeed, error) {
	var needs []*domain.WardNeed
	if err := s.pool.Selectx(ctx, &needs, wardNeedQuery(sector).Limit(limit)); err != nil {
		logger.Errorf(ctx, "TopWardNeedsBySector: %s", err.Error())
		return nil, err
	}
	return needs, nil
}

func (s *store) InsertWardNeeds(ctx context.Context, needs []*domain.WardNeed) error {
	if len(needs) == 0 {
		return nil
	}

	query := builder().Insert(tableWardNeeds).
		Columns("ward", "county", "sector", "score", "data_source", "last_updated")
	for _, need := range needs {
		query = query.Values(need.Ward, need.County, need.Sector, need.Score, need.DataSource, need.LastUpdated)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "InsertWardNeeds: %s", err.Error())
		return err
	}
	return nil
}
