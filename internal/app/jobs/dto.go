package jobs

// SearchParams are the query parameters every jobs listing endpoint takes.
type SearchParams struct {
	Page     int    `json:"page"`
	Keyword  string `json:"keyword,omitempty"`
	Location string `json:"location,omitempty"`
}
