// Package storetest provides an in-memory Store for tests. It mirrors the
// SQL store's observable behavior: insertion-ordered projects, newest-first
// reports, score-ranked ward needs, and media kept as encoded column text so
// the codec path is exercised on every read.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/constants"
	"github.com/sanzad/sanzad-backend/internal/pkg/media"
	"github.com/sanzad/sanzad-backend/internal/pkg/store"
)

type projectRec struct {
	project  domain.Project
	rawMedia string
}

type InMemory struct {
	mu sync.Mutex

	// Err, when set, fails every operation; tests use it to simulate
	// storage failures.
	Err error

	projects []*projectRec
	reports  []*domain.Report
	needs    []*domain.WardNeed

	nextProjectID int64
	nextReportID  int64
	now           func() time.Time
}

var _ store.Store = (*InMemory)(nil)

func NewInMemory() *InMemory {
	return &InMemory{
		nextProjectID: 1,
		nextReportID:  1,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the clock used for created_at values.
func (m *InMemory) SetNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *InMemory) Bootstrap(ctx context.Context) error {
	return m.Err
}

func (m *InMemory) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]*domain.Project, 0, len(m.projects))
	for _, rec := range m.projects {
		out = append(out, rec.decoded())
	}
	return out, nil
}

func (m *InMemory) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	rec := m.findProject(id)
	if rec == nil {
		return nil, constants.ErrProjectNotFound
	}
	return rec.decoded(), nil
}

func (m *InMemory) GetProjectMedia(ctx context.Context, id int64) (*domain.Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	rec := m.findProject(id)
	if rec == nil {
		return nil, constants.ErrProjectNotFound
	}
	decoded := media.Decode([]byte(rec.rawMedia))
	return &decoded, nil
}

func (m *InMemory) InsertProject(ctx context.Context, project *domain.Project) (int64, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, time.Time{}, m.Err
	}

	encoded, err := media.Encode(project.Media)
	if err != nil {
		return 0, time.Time{}, err
	}

	rec := &projectRec{project: *project, rawMedia: string(encoded)}
	rec.project.ID = m.nextProjectID
	rec.project.CreatedAt = m.now()
	rec.project.Media = domain.Media{}
	m.nextProjectID++
	m.projects = append(m.projects, rec)

	return rec.project.ID, rec.project.CreatedAt, nil
}

func (m *InMemory) AppendProjectMedia(ctx context.Context, id int64, item domain.MediaItem) ([]domain.MediaItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	rec := m.findProject(id)
	if rec == nil {
		return nil, constants.ErrProjectNotFound
	}

	items := media.Decode([]byte(rec.rawMedia)).Items
	if items == nil {
		items = []domain.MediaItem{}
	}
	items = append(items, item)

	encoded, err := media.Encode(domain.Media{Items: items})
	if err != nil {
		return nil, err
	}
	rec.rawMedia = string(encoded)
	return items, nil
}

func (m *InMemory) ListReports(ctx context.Context) ([]*domain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]*domain.Report, len(m.reports))
	for i, r := range m.reports {
		clone := *r
		out[i] = &clone
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *InMemory) InsertReport(ctx context.Context, report *domain.Report) (int64, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, time.Time{}, m.Err
	}

	clone := *report
	clone.ID = m.nextReportID
	clone.CreatedAt = m.now()
	m.nextReportID++
	m.reports = append(m.reports, &clone)

	return clone.ID, clone.CreatedAt, nil
}

func (m *InMemory) UpdateReportStatus(ctx context.Context, id int64, status, leaderNote string) (*domain.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, r := range m.reports {
		if r.ID == id {
			r.Status = status
			note := leaderNote
			r.LeaderNote = &note
			clone := *r
			return &clone, nil
		}
	}
	return nil, constants.ErrReportNotFound
}

func (m *InMemory) ListWardNeedsBySector(ctx context.Context, sector string) ([]*domain.WardNeed, error) {
	return m.rankedNeeds(sector, 0)
}

func (m *InMemory) TopWardNeedsBySector(ctx context.Context, sector string, limit uint64) ([]*domain.WardNeed, error) {
	return m.rankedNeeds(sector, limit)
}

func (m *InMemory) InsertWardNeeds(ctx context.Context, needs []*domain.WardNeed) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for _, need := range needs {
		clone := *need
		clone.ID = int64(len(m.needs) + 1)
		m.needs = append(m.needs, &clone)
	}
	return nil
}

func (m *InMemory) CountProjects(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.projects)), nil
}

func (m *InMemory) CountReports(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.reports)), nil
}

func (m *InMemory) CountProjectsByStatus(ctx context.Context) (map[string]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	byStatus := make(map[string]int64)
	for _, rec := range m.projects {
		byStatus[rec.project.Status]++
	}
	return byStatus, nil
}

// Reports returns a snapshot of the raw report rows for assertions on
// table contents.
func (m *InMemory) Reports() []*domain.Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Report, len(m.reports))
	for i, r := range m.reports {
		clone := *r
		out[i] = &clone
	}
	return out
}

func (m *InMemory) findProject(id int64) *projectRec {
	for _, rec := range m.projects {
		if rec.project.ID == id {
			return rec
		}
	}
	return nil
}

func (rec *projectRec) decoded() *domain.Project {
	p := rec.project
	p.Media = media.Decode([]byte(rec.rawMedia))
	return &p
}

func (m *InMemory) rankedNeeds(sector string, limit uint64) ([]*domain.WardNeed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	matched := make([]*domain.WardNeed, 0, len(m.needs))
	for _, need := range m.needs {
		if need.Sector == sector {
			clone := *need
			matched = append(matched, &clone)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Score != matched[j].Score {
			return matched[i].Score > matched[j].Score
		}
		return matched[i].Ward < matched[j].Ward
	})
	if limit > 0 && uint64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
