package wardneed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/sanzad/sanzad-backend/internal/pkg/store/storetest"
)

func seeded(t *testing.T) (*Service, *storetest.InMemory) {
	t.Helper()

	mem := storetest.NewInMemory()
	svc := NewService(mem)
	require.NoError(t, svc.Seed(context.Background()))
	return svc, mem
}

func wards(needs []*domain.WardNeed) []string {
	out := make([]string, len(needs))
	for i, n := range needs {
		out[i] = n.Ward
	}
	return out
}

func TestListBySectorRanksByScore(t *testing.T) {
	svc, _ := seeded(t)

	needs, err := svc.ListBySector(context.Background(), "roads")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kibra", "Mathare", "Westlands"}, wards(needs))

	needs, err = svc.ListBySector(context.Background(), "health")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mathare", "Kibra", "Westlands"}, wards(needs))
}

func TestListBySectorDefaultsToRoads(t *testing.T) {
	svc, _ := seeded(t)

	needs, err := svc.ListBySector(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, needs)
	for _, n := range needs {
		assert.Equal(t, domain.DefaultSector, n.Sector)
	}
}

func TestTopBySectorIsPrefixOfList(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	full, err := svc.ListBySector(ctx, "roads")
	require.NoError(t, err)

	top, err := svc.TopBySector(ctx, "roads", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, wards(full)[:2], wards(top))
}

func TestTopBySectorDefaultLimit(t *testing.T) {
	svc, _ := seeded(t)

	// fewer than ten rows seeded, so a non-positive limit returns them all
	top, err := svc.TopBySector(context.Background(), "roads", 0)
	require.NoError(t, err)
	assert.Len(t, top, 3)

	top, err = svc.TopBySector(context.Background(), "roads", -5)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestTieBreakOnWardName(t *testing.T) {
	mem := storetest.NewInMemory()
	svc := NewService(mem)
	ctx := context.Background()

	source := "test"
	require.NoError(t, mem.InsertWardNeeds(ctx, []*domain.WardNeed{
		{Ward: "Zimmerman", County: "Nairobi", Sector: "water", Score: 50, DataSource: &source},
		{Ward: "Asego", County: "Homa Bay", Sector: "water", Score: 50, DataSource: &source},
	}))

	needs, err := svc.ListBySector(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, []string{"Asego", "Zimmerman"}, wards(needs))
}

func TestSeedRowsCarrySource(t *testing.T) {
	svc, _ := seeded(t)

	needs, err := svc.ListBySector(context.Background(), "roads")
	require.NoError(t, err)
	for _, n := range needs {
		require.NotNil(t, n.DataSource)
		assert.Equal(t, "demo-seed", *n.DataSource)
		require.NotNil(t, n.LastUpdated)
	}
}
