package metrics

import (
	"context"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// Summary composes the dashboard counts. The three queries are independent,
// so they run concurrently.
func (s *Service) Summary(ctx context.Context) (*domain.MetricsSummary, error) {
	summary := &domain.MetricsSummary{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		total, err := s.store.CountProjects(egCtx)
		summary.TotalProjects = total
		return err
	})
	eg.Go(func() error {
		total, err := s.store.CountReports(egCtx)
		summary.TotalReports = total
		return err
	})
	eg.Go(func() error {
		byStatus, err := s.store.CountProjectsByStatus(egCtx)
		summary.ByStatus = byStatus
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}
