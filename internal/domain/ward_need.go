package domain

// DefaultSector is assumed when a ward-needs query names no sector.
const DefaultSector = "roads"

// WardNeed is a precomputed need score for a ward within a sector, populated
// out-of-band (seed or import). Higher score means greater need. Multiple
// rows may exist per (ward, sector); ranking is by score at read time.
type WardNeed struct {
	ID          int64   `db:"id" json:"-"`
	Ward        string  `db:"ward" json:"ward"`
	County      string  `db:"county" json:"county"`
	Sector      string  `db:"sector" json:"sector"`
	Score       float64 `db:"score" json:"score"`
	DataSource  *string `db:"data_source" json:"data_source"`
	LastUpdated *string `db:"last_updated" json:"lastUpdated"`
}

// MetricsSummary is the dashboard aggregate: three independent counts.
type MetricsSummary struct {
	TotalProjects int64            `json:"totalProjects"`
	TotalReports  int64            `json:"totalReports"`
	ByStatus      map[string]int64 `json:"byStatus"`
}
