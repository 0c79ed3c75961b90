package domain

import "time"

// Recognized report statuses. Transitions are unconstrained: an
// administrative update may overwrite any value with any other.
const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)

// Report is a citizen-submitted issue, optionally linked to a project.
type Report struct {
	ID           int64     `db:"id" json:"id"`
	ProjectID    *int64    `db:"project_id" json:"projectId"`
	ReporterName string    `db:"reporter_name" json:"reporterName"`
	Contact      *string   `db:"contact" json:"contact"`
	Location     string    `db:"location" json:"location"`
	IssueType    string    `db:"issue_type" json:"issueType"`
	Description  string    `db:"description" json:"description"`
	EvidenceURL  *string   `db:"evidence_url" json:"evidenceUrl"`
	Status       string    `db:"status" json:"status"`
	LeaderNote   *string   `db:"leader_note" json:"leaderNote"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
