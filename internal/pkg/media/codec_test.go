package media

import (
	"testing"
	"time"

	"github.com/sanzad/sanzad-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDegradesToEmptyList(t *testing.T) {
	cases := map[string][]byte{
		"nil":              nil,
		"empty":            []byte(""),
		"whitespace":       []byte("   "),
		"garbage":          []byte("not json at all"),
		"truncated object": []byte(`{"roadSurface":`),
		"truncated array":  []byte(`[{"url":`),
		"scalar":           []byte(`42`),
		"string":           []byte(`"hello"`),
		"null":             []byte(`null`),
		"wrong elements":   []byte(`[1,2,3]`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			decoded := Decode(raw)
			assert.Nil(t, decoded.Bundle)
			require.NotNil(t, decoded.Items)
			assert.Empty(t, decoded.Items)
		})
	}
}

func TestDecodeString(t *testing.T) {
	decoded := DecodeString(nil)
	assert.Nil(t, decoded.Bundle)
	assert.Empty(t, decoded.Items)

	raw := `[{"url":"/uploads/1-a.jpg","type":"image","caption":"site","uploadedAt":"2024-01-02T03:04:05Z"}]`
	decoded = DecodeString(&raw)
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, "/uploads/1-a.jpg", decoded.Items[0].URL)
	assert.Equal(t, "site", decoded.Items[0].Caption)
}

func TestDecodeAttachmentList(t *testing.T) {
	raw := []byte(`[
		{"url":"/uploads/1-a.jpg","type":"image","caption":"before","uploadedAt":"2024-01-02T03:04:05Z"},
		{"url":"/uploads/2-b.pdf","type":"document","caption":"","uploadedAt":"2024-01-03T00:00:00Z"}
	]`)

	decoded := Decode(raw)
	require.Nil(t, decoded.Bundle)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "document", decoded.Items[1].Type)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), decoded.Items[0].UploadedAt)
}

func TestDecodeGeometryBundle(t *testing.T) {
	raw := []byte(`{
		"roadSurface":"tarmac",
		"roadGeometry":[{"lat":1.2,"lng":3.4}],
		"allocationNotes":"phase one",
		"designs":[{"url":"/uploads/9-plan.pdf","originalName":"plan.pdf","type":"design","uploadedAt":"2024-02-01T00:00:00Z"}]
	}`)

	decoded := Decode(raw)
	require.NotNil(t, decoded.Bundle)
	assert.Equal(t, "tarmac", decoded.Bundle.RoadSurface)
	assert.Len(t, decoded.Bundle.RoadGeometry, 1)
	assert.Equal(t, "phase one", decoded.Bundle.AllocationNotes)
	require.Len(t, decoded.Bundle.Designs, 1)
	assert.Equal(t, "plan.pdf", decoded.Bundle.Designs[0].OriginalName)

	// absent collections normalize to empty, never nil
	assert.NotNil(t, decoded.Bundle.InfraSymbols)
	assert.NotNil(t, decoded.Bundle.Polygons)
	assert.NotNil(t, decoded.Bundle.Allocations)
}

func TestDecodeEmptyBundleGetsDefaults(t *testing.T) {
	decoded := Decode([]byte(`{}`))
	require.NotNil(t, decoded.Bundle)
	assert.Equal(t, domain.RoadSurfaceDefault, decoded.Bundle.RoadSurface)
}

func TestEncodeEmptyListIsBrackets(t *testing.T) {
	encoded, err := Encode(domain.Media{Items: []domain.MediaItem{}})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))

	encoded, err = Encode(domain.Media{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(encoded))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	bundle := &domain.GeometryBundle{
		RoadSurface: "murram",
		DesignNotes: "rev 3",
		Allocations: []domain.BundleDocument{{
			URL:          "/uploads/5-budget.xlsx",
			OriginalName: "budget.xlsx",
			Type:         "allocation",
			UploadedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}},
	}
	bundle.Normalize()

	encoded, err := Encode(domain.Media{Bundle: bundle})
	require.NoError(t, err)

	decoded := Decode(encoded)
	require.NotNil(t, decoded.Bundle)
	assert.Equal(t, bundle, decoded.Bundle)
}
