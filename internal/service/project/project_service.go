package project

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/domain/dto"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
	"github.com/sanzad/sanzad-backend/internal/pkg/upload"
)

// File-group prefixes the geometry editor uses for its document uploads.
const (
	allocationFilesPrefix = "allocationFiles"
	designFilesPrefix     = "designFiles"
)

// GroupedFile is one multipart file part tagged with the form field it
// arrived under.
type GroupedFile struct {
	Field  string
	Header *multipart.FileHeader
}

type Service struct {
	store store.Store
	files *upload.Storage
}

func NewService(store store.Store, files *upload.Storage) *Service {
	return &Service{store: store, files: files}
}

func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *Service) GetMedia(ctx context.Context, id int64) (*domain.Media, error) {
	return s.store.GetProjectMedia(ctx, id)
}

// Create inserts a simple project with an empty attachment list. The result
// echoes the caller's field values plus the assigned id and creation time.
func (s *Service) Create(ctx context.Context, in *dto.CreateProject) (*domain.Project, error) {
	project := fromFields(in)
	project.Media = domain.Media{Items: []domain.MediaItem{}}

	return s.insert(ctx, project)
}

// CreateWithGeometry inserts a project whose media is the geometry bundle.
// Uploaded files are partitioned by field-name prefix into allocation and
// design documents; anything under another field name is ignored.
func (s *Service) CreateWithGeometry(ctx context.Context, in *dto.GeometryProject, files []GroupedFile) (*domain.Project, error) {
	bundle := &domain.GeometryBundle{
		RoadSurface:     in.RoadSurface,
		RoadGeometry:    in.RoadGeometry,
		InfraSymbols:    in.InfraSymbols,
		Polygons:        in.Polygons,
		AllocationNotes: in.AllocationNotes,
		DesignNotes:     in.DesignNotes,
	}
	bundle.Normalize()

	for _, f := range files {
		var kind string
		switch {
		case strings.HasPrefix(f.Field, allocationFilesPrefix):
			kind = "allocation"
		case strings.HasPrefix(f.Field, designFilesPrefix):
			kind = "design"
		default:
			continue
		}

		name, err := s.files.SaveHeader(f.Header)
		if err != nil {
			return nil, err
		}

		doc := domain.BundleDocument{
			URL:          s.files.URL(name),
			OriginalName: f.Header.Filename,
			Type:         kind,
			UploadedAt:   time.Now().UTC(),
		}
		if kind == "allocation" {
			bundle.Allocations = append(bundle.Allocations, doc)
		} else {
			bundle.Designs = append(bundle.Designs, doc)
		}
	}

	project := fromFields(in.ProjectFields())
	project.Media = domain.Media{Bundle: bundle}

	return s.insert(ctx, project)
}

// AppendMedia stores the file, then appends the attachment record to the
// project's media sequence. Type defaults to "image", caption to "".
func (s *Service) AppendMedia(ctx context.Context, id int64, fh *multipart.FileHeader, caption, mediaType string) ([]domain.MediaItem, error) {
	name, err := s.files.SaveHeader(fh)
	if err != nil {
		return nil, err
	}

	if mediaType == "" {
		mediaType = "image"
	}
	item := domain.MediaItem{
		URL:        s.files.URL(name),
		Type:       mediaType,
		Caption:    caption,
		UploadedAt: time.Now().UTC(),
	}

	return s.store.AppendProjectMedia(ctx, id, item)
}

func (s *Service) insert(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	id, createdAt, err := s.store.InsertProject(ctx, project)
	if err != nil {
		return nil, err
	}
	project.ID = id
	project.CreatedAt = createdAt
	return project, nil
}

func fromFields(in *dto.CreateProject) *domain.Project {
	status := in.Status
	if status == "" {
		status = domain.ProjectStatusPlanned
	}
	return &domain.Project{
		Name:             in.Name,
		Ward:             in.Ward,
		County:           in.County,
		Type:             in.Type,
		Budget:           in.Budget,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		ManagingAgency:   in.ManagingAgency,
		Lat:              in.Lat,
		Lng:              in.Lng,
		Status:           status,
		FundingBody:      in.FundingBody,
		InitiatingLeader: in.InitiatingLeader,
		Description:      in.Description,
	}
}
