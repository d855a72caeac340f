package domain

import "time"

// QueueClass names a family of tasks. Each class has its own durable queue.
type QueueClass string

const (
	QueueArticleProcessing QueueClass = "article_processing"
	QueueNewsFetching      QueueClass = "news_fetching"
	QueueTranslation       QueueClass = "translation"
)

var QueueClasses = []QueueClass{QueueArticleProcessing, QueueNewsFetching, QueueTranslation}

type Operation string

const (
	OpSummarize  Operation = "summarize"
	OpCategorize Operation = "categorize"
	OpHashtags   Operation = "hashtags"
	OpKeyPoints  Operation = "key_points"
	OpModerate   Operation = "moderate"
	OpEmbed      Operation = "embed"
)

// OperationOrder is the order enrichment steps run in, whatever order the task lists them.
var OperationOrder = []Operation{OpSummarize, OpCategorize, OpHashtags, OpKeyPoints, OpModerate, OpEmbed}

// CanonicalOperations drops duplicates and unknown names and sorts ops into OperationOrder.
func CanonicalOperations(ops []Operation) []Operation {
	want := make(map[Operation]bool, len(ops))
	for _, op := range ops {
		want[op] = true
	}
	out := make([]Operation, 0, len(want))
	for _, op := range OperationOrder {
		if want[op] {
			out = append(out, op)
		}
	}
	return out
}

type EnrichmentTask struct {
	ArticleID  string      `json:"article_id" validate:"required"`
	Operations []Operation `json:"operations" validate:"required,min=1,dive,oneof=summarize categorize hashtags key_points moderate embed"`
	Timestamp  time.Time   `json:"timestamp"`
}

type FeedFetchTask struct {
	FeedURL   string    `json:"feed_url" validate:"required,url"`
	Timestamp time.Time `json:"timestamp"`
}

type TranslationTask struct {
	ArticleID string    `json:"article_id" validate:"required"`
	Language  string    `json:"language" validate:"required,min=2,max=10"`
	Timestamp time.Time `json:"timestamp"`
}
