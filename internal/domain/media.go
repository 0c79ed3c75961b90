package domain

import (
	"encoding/json"
	"time"

	"github.com/bytedance/sonic"
)

// RoadSurfaceDefault is applied when the geometry editor sends no surface.
const RoadSurfaceDefault = "highway"

// MediaItem is one citizen/admin upload attached to a project.
type MediaItem struct {
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// BundleDocument is an allocation or design document inside a geometry bundle.
type BundleDocument struct {
	URL          string    `json:"url"`
	OriginalName string    `json:"originalName"`
	Type         string    `json:"type"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// GeometryBundle is the structured media variant produced by the admin map
// editor: drawing data plus allocation/design documents. Geometry shapes are
// kept as raw JSON; the backend never interprets them.
type GeometryBundle struct {
	RoadSurface     string            `json:"roadSurface"`
	RoadGeometry    []json.RawMessage `json:"roadGeometry"`
	InfraSymbols    []json.RawMessage `json:"infraSymbols"`
	Polygons        []json.RawMessage `json:"polygons"`
	AllocationNotes string            `json:"allocationNotes"`
	DesignNotes     string            `json:"designNotes"`
	Allocations     []BundleDocument  `json:"allocations"`
	Designs         []BundleDocument  `json:"designs"`
}

// Normalize replaces nil slices so the bundle always serializes with [] and
// the surface default is applied.
func (b *GeometryBundle) Normalize() {
	if b.RoadSurface == "" {
		b.RoadSurface = RoadSurfaceDefault
	}
	if b.RoadGeometry == nil {
		b.RoadGeometry = []json.RawMessage{}
	}
	if b.InfraSymbols == nil {
		b.InfraSymbols = []json.RawMessage{}
	}
	if b.Polygons == nil {
		b.Polygons = []json.RawMessage{}
	}
	if b.Allocations == nil {
		b.Allocations = []BundleDocument{}
	}
	if b.Designs == nil {
		b.Designs = []BundleDocument{}
	}
}

// Media is the tagged variant stored in the projects.media column: either an
// ordered attachment list (Items) or a geometry bundle (Bundle). Exactly one
// case is populated; a nil Bundle means the attachment-list case.
type Media struct {
	Items  []MediaItem
	Bundle *GeometryBundle
}

func (m Media) MarshalJSON() ([]byte, error) {
	if m.Bundle != nil {
		return sonic.Marshal(m.Bundle)
	}
	if m.Items == nil {
		return []byte("[]"), nil
	}
	return sonic.Marshal(m.Items)
}
