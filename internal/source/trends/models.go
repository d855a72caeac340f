package trends

// APIResponse is the subset of the SerpApi google_trends RELATED_QUERIES
// response the source reads.
type APIResponse struct {
	SearchMetadata SearchMetadata `json:"search_metadata"`
	RelatedQueries RelatedQueries `json:"related_queries"`
	Error          string         `json:"error"`
}

type SearchMetadata struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type RelatedQueries struct {
	Top    []Query `json:"top"`
	Rising []Query `json:"rising"`
}

type Query struct {
	Query string `json:"query"`
	Value any    `json:"value"`
	Link  string `json:"link"`
}
