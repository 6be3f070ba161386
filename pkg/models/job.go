package models

// JobRecord is the normalized, provider-agnostic representation of one job
// posting. Provider clients translate their upstream field names into this
// shape; nothing downstream ever sees a provider-specific payload.
type JobRecord struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Salary      string `json:"salary"`
	Source      string `json:"source"`
	PostedDate  string `json:"posted_date"`
	JobType     string `json:"job_type"`
}

// Sentinel values used by provider clients when an upstream field is absent.
const (
	NotSpecified = "Not specified"
	RemoteType   = "Remote"
)

// SearchParams holds the structured search criteria heuristically extracted
// from a conversation. Location is always populated ("Remote" by default).
type SearchParams struct {
	Title      string `json:"title,omitempty"`
	Location   string `json:"location"`
	Salary     string `json:"salary,omitempty"`
	Experience string `json:"experience,omitempty"`
	Type       string `json:"type,omitempty"`
}

// SearchMetadata captures how a search was executed.
type SearchMetadata struct {
	Query     string   `json:"query"`
	Location  string   `json:"location"`
	Sources   []string `json:"sources,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// SearchResult is the aggregator's reply: either a success carrying the
// merged job list or an error carrying a message and an empty list. It is
// recomputed per request and never stored.
type SearchResult struct {
	Status       string         `json:"status"`
	Error        string         `json:"error,omitempty"`
	TotalJobs    int            `json:"total_jobs"`
	Jobs         []JobRecord    `json:"jobs"`
	SearchParams *SearchParams  `json:"search_params"`
	Metadata     SearchMetadata `json:"metadata"`
}

// SearchResult status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
