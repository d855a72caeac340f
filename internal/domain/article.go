package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNotApproved   = errors.New("article must be approved before publishing")
	ErrUnknownStatus = errors.New("unknown article status")
	ErrInvalidID     = errors.New("invalid article id")
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusPublished     Status = "published"
	StatusArchived      Status = "archived"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusDraft, StatusPendingReview, StatusApproved, StatusPublished, StatusArchived:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

type Category string

const (
	CategoryPolitics      Category = "politics"
	CategoryTechnology    Category = "technology"
	CategoryBusiness      Category = "business"
	CategorySports        Category = "sports"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategoryWorld         Category = "world"
	CategoryLocal         Category = "local"
)

// Categories lists every value accepted by the articles table.
var Categories = []Category{
	CategoryPolitics, CategoryTechnology, CategoryBusiness, CategorySports,
	CategoryEntertainment, CategoryHealth, CategoryScience, CategoryWorld, CategoryLocal,
}

// ParseCategory returns the category named by s, or false when s is not one of Categories.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

type Article struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Content     string     `db:"content"`
	Excerpt     *string    `db:"excerpt"`
	Category    Category   `db:"category"`
	Status      Status     `db:"status"`
	Language    string     `db:"language"`
	AuthorID    *string    `db:"author_id"`
	SourceURL   *string    `db:"source_url"`
	Thumbnail   *string    `db:"thumbnail"`
	Tags        []string   `db:"-"`
	PublishTime *time.Time `db:"publish_time"`
	PublishedAt *time.Time `db:"published_at"`
	ViewCount   int64      `db:"view_count"`
	LikeCount   int64      `db:"like_count"`
	CommentCnt  int64      `db:"comment_count"`
	Enrichment
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Enrichment holds the AI-produced fields. Nil means "not produced yet".
type Enrichment struct {
	Summary         *string   `db:"ai_summary"`
	Hashtags        []string  `db:"-"`
	SuggestedCat    *Category `db:"ai_category"`
	KeyPoints       []string  `db:"-"`
	ContentWarnings []string  `db:"-"`
	Embedding       []float64 `db:"-"`
}

func (e Enrichment) IsEmpty() bool {
	return e.Summary == nil && e.Hashtags == nil && e.SuggestedCat == nil &&
		e.KeyPoints == nil && e.ContentWarnings == nil && e.Embedding == nil
}

// NormalizeID maps the accepted identifier forms (integer, uuid, 24-hex object id,
// opaque key) onto one canonical string so that lookups match regardless of the
// inbound form.
func NormalizeID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidID
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
		}
		return strconv.FormatInt(n, 10), nil
	}
	if u, err := uuid.Parse(s); err == nil {
		return u.String(), nil
	}
	if isObjectID(s) {
		return strings.ToLower(s), nil
	}
	if opaqueID.MatchString(s) {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidID, raw)
}

var opaqueID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

func NewSurrogateID() string {
	return uuid.NewString()
}

func isObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

type Translation struct {
	ArticleID string    `db:"article_id"`
	Language  string    `db:"language"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Excerpt   *string   `db:"excerpt"`
	Provider  string    `db:"provider"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AgentLog is one AI provider invocation. Rows are never updated.
type AgentLog struct {
	ArticleID    *string   `db:"article_id"`
	AgentName    string    `db:"agent_name"`
	Action       string    `db:"action"`
	Model        string    `db:"model_used"`
	DurationMS   int64     `db:"duration_ms"`
	TokensUsed   int       `db:"tokens_used"`
	Success      bool      `db:"success"`
	OutputDigest string    `db:"output_summary"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
}

type Image struct {
	URL string
	Alt string
}

type FeedEntry struct {
	Title       string
	Link        string
	Description string
	Content     string
	Categories  []string
	PublishedAt *time.Time
}
