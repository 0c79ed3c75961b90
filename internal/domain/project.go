package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recognized project statuses. The column stores arbitrary strings (callers
// may set anything); these are the values the dashboards know about.
const (
	ProjectStatusPlanned   = "planned"
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
	ProjectStatusStalled   = "stalled"
)

// Project is a civic infrastructure initiative. Media holds either the
// citizen-upload attachment list or the admin geometry bundle, fixed at
// creation time.
type Project struct {
	ID               int64            `db:"id" json:"id"`
	Name             string           `db:"name" json:"name"`
	Ward             string           `db:"ward" json:"ward"`
	County           string           `db:"county" json:"county"`
	Type             string           `db:"type" json:"type"`
	Budget           *decimal.Decimal `db:"budget" json:"budget"`
	StartDate        *string          `db:"start_date" json:"startDate"`
	EndDate          *string          `db:"end_date" json:"endDate"`
	ManagingAgency   string           `db:"managing_agency" json:"managingAgency"`
	Lat              *float64         `db:"lat" json:"lat"`
	Lng              *float64         `db:"lng" json:"lng"`
	Status           string           `db:"status" json:"status"`
	CreatedAt        time.Time        `db:"created_at" json:"createdAt"`
	FundingBody      string           `db:"funding_body" json:"fundingBody"`
	InitiatingLeader string           `db:"initiating_leader" json:"initiatingLeader"`
	Description      string           `db:"description" json:"description"`
	Media            Media            `db:"-" json:"media"`
}
