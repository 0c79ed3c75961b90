package wardneed

import (
	"context"
	"time"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
)

const defaultTopLimit = 10

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ListBySector returns the ranked needs for a sector, best score first.
// An empty sector means roads.
func (s *Service) ListBySector(ctx context.Context, sector string) ([]*domain.WardNeed, error) {
	if sector == "" {
		sector = domain.DefaultSector
	}
	return s.store.ListWardNeedsBySector(ctx, sector)
}

// TopBySector returns at most limit ranked needs; a non-positive limit
// means 10. The result is a prefix of ListBySector.
func (s *Service) TopBySector(ctx context.Context, sector string, limit int) ([]*domain.WardNeed, error) {
	if sector == "" {
		sector = domain.DefaultSector
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.store.TopWardNeedsBySector(ctx, sector, uint64(limit))
}

// Seed inserts the demo rows used by local setups and the dashboards.
func (s *Service) Seed(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)
	source := "demo-seed"

	demo := []struct {
		ward, county, sector string
		score                float64
	}{
		{"Kibra", "Nairobi", "roads", 90},
		{"Mathare", "Nairobi", "roads", 85},
		{"Westlands", "Nairobi", "roads", 40},
		{"Kibra", "Nairobi", "health", 75},
		{"Mathare", "Nairobi", "health", 80},
		{"Westlands", "Nairobi", "health", 30},
	}

	needs := make([]*domain.WardNeed, 0, len(demo))
	for _, d := range demo {
		needs = append(needs, &domain.WardNeed{
			Ward:        d.ward,
			County:      d.county,
			Sector:      d.sector,
			Score:       d.score,
			DataSource:  &source,
			LastUpdated: &now,
		})
	}
	return s.store.InsertWardNeeds(ctx, needs)
}
