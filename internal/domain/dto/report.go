package dto

// CreateReport is the JSON body of POST /api/reports. Status is ignored on
// input: every new report starts as pending.
type CreateReport struct {
	ProjectID    *int64  `json:"projectId"`
	ReporterName string  `json:"reporterName" validate:"required"`
	Contact      *string `json:"contact"`
	Location     string  `json:"location" validate:"required"`
	IssueType    string  `json:"issueType" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	EvidenceURL  *string `json:"evidenceUrl"`
}

// UpdateReportStatus is the JSON body of PATCH /api/reports/:id/status.
// Any status string overwrites any other; an omitted leaderNote clears the
// stored note to "".
type UpdateReportStatus struct {
	Status     string  `json:"status" validate:"required"`
	LeaderNote *string `json:"leaderNote"`
}
