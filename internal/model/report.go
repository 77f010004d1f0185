package model

// Status indicates whether a document made it through the pipeline.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Report is the complete triage result for a single FNOL document.
// MissingFields and Inconsistencies are always non-nil so the JSON output
// contains empty arrays rather than null.
type Report struct {
	Status  Status `json:"status"`
	File    string `json:"file"`
	Message string `json:"message,omitempty"` // set on error reports only

	ExtractedFields  *ClaimData `json:"extractedFields,omitempty"`
	MissingFields    []string   `json:"missingFields"`
	Inconsistencies  []string   `json:"inconsistencies"`
	RecommendedRoute string     `json:"recommendedRoute"`
	Reasoning        string     `json:"reasoning"`
}
