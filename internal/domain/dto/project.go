package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CreateProject is the JSON body of POST /api/projects. Optional strings
// default to "" and optional numerics stay NULL at the store.
type CreateProject struct {
	Name             string           `json:"name" validate:"required"`
	Ward             string           `json:"ward" validate:"required"`
	County           string           `json:"county" validate:"required"`
	Type             string           `json:"type" validate:"required"`
	Budget           *decimal.Decimal `json:"budget"`
	StartDate        *string          `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	ManagingAgency   string           `json:"managingAgency"`
	Lat              *float64         `json:"lat"`
	Lng              *float64         `json:"lng"`
	Status           string           `json:"status"`
	FundingBody      string           `json:"fundingBody"`
	InitiatingLeader string           `json:"initiatingLeader"`
	Description      string           `json:"description"`
}

// GeometryProject is the decoded `project` field of the multipart
// POST /api/projects-with-files. The admin editor may send any subset of
// fields, so nothing is required here; absent fields get the same defaults
// as CreateProject.
type GeometryProject struct {
	Name             string           `json:"name"`
	Ward             string           `json:"ward"`
	County           string           `json:"county"`
	Type             string           `json:"type"`
	Budget           *decimal.Decimal `json:"budget"`
	StartDate        *string          `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	ManagingAgency   string           `json:"managingAgency"`
	Lat              *float64         `json:"lat"`
	Lng              *float64         `json:"lng"`
	Status           string           `json:"status"`
	FundingBody      string           `json:"fundingBody"`
	InitiatingLeader string           `json:"initiatingLeader"`
	Description      string           `json:"description"`

	RoadSurface     string            `json:"roadSurface"`
	RoadGeometry    []json.RawMessage `json:"roadGeometry"`
	InfraSymbols    []json.RawMessage `json:"infraSymbols"`
	Polygons        []json.RawMessage `json:"polygons"`
	AllocationNotes string            `json:"allocationNotes"`
	DesignNotes     string            `json:"designNotes"`
}

// ProjectFields narrows the payload to the plain project columns.
func (g *GeometryProject) ProjectFields() *CreateProject {
	return &CreateProject{
		Name:             g.Name,
		Ward:             g.Ward,
		County:           g.County,
		Type:             g.Type,
		Budget:           g.Budget,
		StartDate:        g.StartDate,
		EndDate:          g.EndDate,
		ManagingAgency:   g.ManagingAgency,
		Lat:              g.Lat,
		Lng:              g.Lng,
		Status:           g.Status,
		FundingBody:      g.FundingBody,
		InitiatingLeader: g.InitiatingLeader,
		Description:      g.Description,
	}
}
