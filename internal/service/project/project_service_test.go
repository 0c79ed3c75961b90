package project

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/domain/dto"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/storetest"
	"github.com/sanzad/sanzad-backend/internal/pkg/upload"
)

func newTestService(t *testing.T) (*Service, *storetest.InMemory) {
	t.Helper()

	mem := storetest.NewInMemory()
	files, err := upload.NewStorage(t.TempDir())
	require.NoError(t, err)
	return NewService(mem, files), mem
}

// fileHeader builds a real multipart.FileHeader by writing a form and
// parsing it back.
func fileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestCreateDefaultsAndEcho(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), &dto.CreateProject{
		Name:   "Kibra Drainage",
		Ward:   "Kibra",
		County: "Nairobi",
		Type:   "drainage",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, domain.ProjectStatusPlanned, created.Status)
	assert.Nil(t, created.Budget)
	assert.Nil(t, created.StartDate)
	require.NotNil(t, created.Media.Items)
	assert.Empty(t, created.Media.Items)
	assert.Nil(t, created.Media.Bundle)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	svc, _ := newTestService(t)

	budget := decimal.NewFromInt(1500000)
	created, err := svc.Create(context.Background(), &dto.CreateProject{
		Name:   "Mathare Clinic",
		Ward:   "Mathare",
		County: "Nairobi",
		Type:   "health",
		Status: domain.ProjectStatusOngoing,
		Budget: &budget,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectStatusOngoing, created.Status)
	require.NotNil(t, created.Budget)
	assert.True(t, created.Budget.Equal(budget))
}

func TestCreateWithGeometryPartitionsFiles(t *testing.T) {
	svc, mem := newTestService(t)

	files := []GroupedFile{
		{Field: "allocationFiles0", Header: fileHeader(t, "allocationFiles0", "budget.xlsx", "sheet")},
		{Field: "designFiles0", Header: fileHeader(t, "designFiles0", "plan.pdf", "drawing")},
		{Field: "designFiles1", Header: fileHeader(t, "designFiles1", "section.pdf", "drawing 2")},
		{Field: "avatar", Header: fileHeader(t, "avatar", "me.png", "ignored")},
	}

	created, err := svc.CreateWithGeometry(context.Background(), &dto.GeometryProject{
		Name:        "Road X",
		RoadSurface: "tarmac",
	}, files)
	require.NoError(t, err)

	stored, err := mem.GetProjectMedia(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Bundle)

	assert.Equal(t, "tarmac", stored.Bundle.RoadSurface)
	require.Len(t, stored.Bundle.Allocations, 1)
	assert.Equal(t, "budget.xlsx", stored.Bundle.Allocations[0].OriginalName)
	assert.Equal(t, "allocation", stored.Bundle.Allocations[0].Type)
	require.Len(t, stored.Bundle.Designs, 2)
	assert.Equal(t, "plan.pdf", stored.Bundle.Designs[0].OriginalName)
	assert.Equal(t, "design", stored.Bundle.Designs[1].Type)
	assert.Contains(t, stored.Bundle.Designs[0].URL, "/uploads/")
}

func TestCreateWithGeometryBareFields(t *testing.T) {
	svc, mem := newTestService(t)

	created, err := svc.CreateWithGeometry(context.Background(), &dto.GeometryProject{
		Name: "Road X",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ProjectStatusPlanned, created.Status)

	stored, err := mem.GetProjectMedia(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Bundle)
	assert.Equal(t, domain.RoadSurfaceDefault, stored.Bundle.RoadSurface)
	assert.NotNil(t, stored.Bundle.RoadGeometry)
	assert.NotNil(t, stored.Bundle.Allocations)
}

func TestAppendMediaGrowsSequence(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateProject{
		Name: "Westlands Lights", Ward: "Westlands", County: "Nairobi", Type: "lighting",
	})
	require.NoError(t, err)

	items, err := svc.AppendMedia(ctx, created.ID, fileHeader(t, "file", "before.jpg", "a"), "before works", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "image", items[0].Type)
	assert.Equal(t, "before works", items[0].Caption)

	items, err = svc.AppendMedia(ctx, created.ID, fileHeader(t, "file", "after.jpg", "b"), "", "photo")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "photo", items[1].Type)
	// earlier items survive in order
	assert.Equal(t, "before works", items[0].Caption)

	media, err := svc.GetMedia(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, media.Items, 2)
}

func TestAppendMediaMissingProject(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AppendMedia(context.Background(), 99, fileHeader(t, "file", "x.jpg", "a"), "", "")
	assert.Error(t, err)
}
