package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
	"github.com/sanzad/sanzad-backend/internal/pkg/media"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/xpgx"
)

var projectColumns = []string{
	"id", "name", "ward", "county", "type", "budget", "start_date", "end_date",
	"managing_agency", "lat", "lng", "status", "created_at", "funding_body",
	"initiating_leader", "description", "media",
}

// projectRow carries the raw media column next to the decoded entity.
type projectRow struct {
	domain.Project
	RawMedia *string `db:"media"`
}

func (r *projectRow) toProject() *domain.Project {
	p := r.Project
	p.Media = media.DecodeString(r.RawMedia)
	return &p
}

// ListProjects returns every project in the store's natural row order.
// Insertion order is deliberately preserved: there is no ORDER BY.
func (s *store) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	query := builder().Select(projectColumns...).From(tableProjects)

	var rows []*projectRow
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		logger.Errorf(ctx, "ListProjects: %s", err.Error())
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toProject())
	}
	return projects, nil
}

func (s *store) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	query := builder().Select(projectColumns...).
		From(tableProjects).
		Where(sq.Eq{"id": id})

	var row projectRow
	if err := s.pool.Getx(ctx, &row, query); err != nil {
		return nil, wrapNotFound(err, constants.ErrProjectNotFound)
	}
	return row.toProject(), nil
}

func (s *store) GetProjectMedia(ctx context.Context, id int64) (*domain.Media, error) {
	query := builder().Select("media").
		From(tableProjects).
		Where(sq.Eq{"id": id})

	var raw *string
	if err := s.pool.Getx(ctx, &raw, query); err != nil {
		return nil, wrapNotFound(err, constants.ErrProjectNotFound)
	}

	decoded := media.DecodeString(raw)
	return &decoded, nil
}

// InsertProject stores the row and returns the assigned id and server-side
// creation time. The caller keeps its own field values; nothing is re-read.
func (s *store) InsertProject(ctx context.Context, project *domain.Project) (int64, time.Time, error) {
	encoded, err := media.Encode(project.Media)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("encode media: %w", err)
	}

	query := builder().Insert(tableProjects).
		Columns(
			"name", "ward", "county", "type", "budget", "start_date", "end_date",
			"managing_agency", "lat", "lng", "status", "funding_body",
			"initiating_leader", "description", "media",
		).
		Values(
			project.Name, project.Ward, project.County, project.Type,
			project.Budget, project.StartDate, project.EndDate,
			project.ManagingAgency, project.Lat, project.Lng, project.Status,
			project.FundingBody, project.InitiatingLeader, project.Description,
			string(encoded),
		).
		Suffix("RETURNING id, created_at")

	var returned struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := s.pool.Getx(ctx, &returned, query); err != nil {
		logger.Errorf(ctx, "InsertProject: %s", err.Error())
		return 0, time.Time{}, err
	}
	return returned.ID, returned.CreatedAt, nil
}

// AppendProjectMedia appends one attachment to the project's media sequence.
// The read and write run in a single transaction with the row locked, so
// concurrent appends serialize instead of overwriting each other. A stored
// geometry bundle is defensively coerced to an empty sequence first.
func (s *store) AppendProjectMedia(ctx context.Context, id int64, item domain.MediaItem) ([]domain.MediaItem, error) {
	var items []domain.MediaItem

	err := s.pool.InTx(ctx, func(q xpgx.Queryer) error {
		sel := builder().Select("media").
			From(tableProjects).
			Where(sq.Eq{"id": id}).
			Suffix("FOR UPDATE")

		var raw *string
		if err := q.Getx(ctx, &raw, sel); err != nil {
			return wrapNotFound(err, constants.ErrProjectNotFound)
		}

		items = media.DecodeString(raw).Items
		if items == nil {
			items = []domain.MediaItem{}
		}
		items = append(items, item)

		encoded, err := media.Encode(domain.Media{Items: items})
		if err != nil {
			return fmt.Errorf("encode media: %w", err)
		}

		upd := builder().Update(tableProjects).
			Set("media", string(encoded)).
			Where(sq.Eq{"id": id})
		_, err = q.Execx(ctx, upd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *store) CountProjects(ctx context.Context) (int64, error) {
	query := builder().Select("COUNT(*)").From(tableProjects)

	var total int64
	if err := s.pool.Getx(ctx, &total, query); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *store) CountProjectsByStatus(ctx context.Context) (map[string]int64, error) {
	query := builder().Select("status", "COUNT(*) AS count").
		From(tableProjects).
		GroupBy("status")

	var rows []*struct {
		Status string `db:"status"`
		Count  int64  `db:"count"`
	}
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}
	return byStatus, nil
}
