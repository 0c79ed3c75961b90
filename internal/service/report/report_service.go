package report

import (
	"context"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/domain/dto"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// List returns all reports, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Report, error) {
	return s.store.ListReports(ctx)
}

// Create stores a citizen report. Status is forced to pending regardless of
// anything the caller sent.
func (s *Service) Create(ctx context.Context, in *dto.CreateReport) (*domain.Report, error) {
	report := &domain.Report{
		ProjectID:    in.ProjectID,
		ReporterName: in.ReporterName,
		Contact:      in.Contact,
		Location:     in.Location,
		IssueType:    in.IssueType,
		Description:  in.Description,
		EvidenceURL:  in.EvidenceURL,
		Status:       domain.ReportStatusPending,
	}

	id, createdAt, err := s.store.InsertReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = id
	report.CreatedAt = createdAt
	return report, nil
}

// UpdateStatus overwrites status and leader note on the report. An omitted
// note stores "".
func (s *Service) UpdateStatus(ctx context.Context, id int64, in *dto.UpdateReportStatus) (*domain.Report, error) {
	note := ""
	if in.LeaderNote != nil {
		note = *in.LeaderNote
	}
	return s.store.UpdateReportStatus(ctx, id, in.Status, note)
}
