package store

import (
	"context"
	"time"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the only owner of durable state. Every method maps to one
// parameterized statement (AppendProjectMedia uses one transaction).
type Store interface {
	Bootstrap(ctx context.Context) error

	ListProjects(ctx context.Context) ([]*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	GetProjectMedia(ctx context.Context, id int64) (*domain.Media, error)
	InsertProject(ctx context.Context, project *domain.Project) (int64, time.Time, error)
	AppendProjectMedia(ctx context.Context, id int64, item domain.MediaItem) ([]domain.MediaItem, error)

	ListReports(ctx context.Context) ([]*domain.Report, error)
	InsertReport(ctx context.Context, report *domain.Report) (int64, time.Time, error)
	UpdateReportStatus(ctx context.Context, id int64, status, leaderNote string) (*domain.Report, error)

	ListWardNeedsBySector(ctx context.Context, sector string) ([]*domain.WardNeed, error)
	TopWardNeedsBySector(ctx context.Context, sector string, limit uint64) ([]*domain.WardNeed, error)
	InsertWardNeeds(ctx context.Context, needs []*domain.WardNeed) error

	CountProjects(ctx context.Context) (int64, error)
	CountReports(ctx context.Context) (int64, error)
	CountProjectsByStatus(ctx context.Context) (map[string]int64, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
