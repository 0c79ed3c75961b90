package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/logger"
)

var reportColumns = []string{
	"id", "project_id", "reporter_name", "contact", "location", "issue_type",
	"description", "evidence_url", "status", "leader_note", "created_at",
}

func (s *store) ListReports(ctx context.Context) ([]*domain.Report, error) {
	query := builder().Select(reportColumns...).
		From(tableReports).
		OrderBy("created_at DESC")

	var reports []*domain.Report
	if err := s.pool.Selectx(ctx, &reports, query); err != nil {
		logger.Errorf(ctx, "ListReports: %s", err.Error())
		return nil, err
	}
	return reports, nil
}

func (s *store) InsertReport(ctx context.Context, report *domain.Report) (int64, time.Time, error) {
	query := builder().Insert(tableReports).
		Columns(
			"project_id", "reporter_name", "contact", "location", "issue_type",
			"description", "evidence_url", "status",
		).
		Values(
			report.ProjectID, report.ReporterName, report.Contact,
			report.Location, report.IssueType, report.Description,
			report.EvidenceURL, report.Status,
		).
		Suffix("RETURNING id, created_at")

	var returned struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := s.pool.Getx(ctx, &returned, query); err != nil {
		logger.Errorf(ctx, "InsertReport: %s", err.Error())
		return 0, time.Time{}, err
	}
	return returned.ID, returned.CreatedAt, nil
}

// UpdateReportStatus overwrites status and leader note unconditionally. A
// missing id is not an error at the storage layer, so not-found is decided
// by the affected-row count, then the updated row is read back.
func (s *store) UpdateReportStatus(ctx context.Context, id int64, status, leaderNote string) (*domain.Report, error) {
	query := builder().Update(tableReports).
		Set("status", status).
		Set("leader_note", leaderNote).
		Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "UpdateReportStatus: %s", err.Error())
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrReportNotFound
	}

	selectQuery := builder().Select(reportColumns...).
		From(tableReports).
		Where(sq.Eq{"id": id})

	var report domain.Report
	if err := s.pool.Getx(ctx, &report, selectQuery); err != nil {
		return nil, wrapNotFound(err, constants.ErrReportNotFound)
	}
	return &report, nil
}

func (s *store) CountReports(ctx context.Context) (int64, error) {
	query := builder().Select("COUNT(*)").From(tableReports)

	var total int64
	if err := s.pool.Getx(ctx, &total, query); err != nil {
		return 0, err
	}
	return total, nil
}
