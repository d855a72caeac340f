package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/keywords"
	"news_pipeline/internal/markup"
	"news_pipeline/internal/source/trends"
)

const (
	generatorAgent    = "content_generator"
	maxInlineImages   = 3
	articleMaxTokens  = 8000
	articleSampleTemp = 0.7
)

type GeneratorConfig struct {
	Topics          []string
	MinKeywords     int
	MaxKeywords     int
	Fallback        []string
	ImageCount      int
	DefaultLanguage string
}

// GeneratorService discovers trending keywords and turns them into published
// articles, one keyword per GenerateNext call.
type GeneratorService struct {
	trends    TrendSource
	images    ImageSource
	keywords  KeywordQueue
	ai        AI
	articles  ArticleStore
	tags      TagStore
	txManager TransactionManager
	followUp  FollowUp
	cfg       GeneratorConfig
	logger    zerolog.Logger
	now       func() time.Time
	// pick returns k distinct values from [0, n).
	pick func(n, k int) []int
}

func NewGeneratorService(
	trendSource TrendSource,
	images ImageSource,
	queue KeywordQueue,
	ai AI,
	articles ArticleStore,
	tags TagStore,
	txManager TransactionManager,
	followUp FollowUp,
	cfg GeneratorConfig,
	logger zerolog.Logger,
) *GeneratorService {
	if cfg.ImageCount <= 0 {
		cfg.ImageCount = 4
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "vi"
	}
	return &GeneratorService{
		trends:    trendSource,
		images:    images,
		keywords:  queue,
		ai:        ai,
		articles:  articles,
		tags:      tags,
		txManager: txManager,
		followUp:  followUp,
		cfg:       cfg,
		logger:    logger.With().Str("component", "generator").Logger(),
		now:       time.Now,
		pick: func(n, k int) []int {
			return rand.Perm(n)[:k]
		},
	}
}

// Discover collects trending keywords for every topic, tops them up from the
// fallback list when the source gives too few, and offers them to the queue.
func (s *GeneratorService) Discover(ctx context.Context) (*domain.DiscoveryStats, error) {
	start := time.Now()
	stats := &domain.DiscoveryStats{}

	var found []string
	seen := map[string]bool{}
	add := func(kw string) {
		k := keywords.Key(kw)
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		found = append(found, strings.TrimSpace(kw))
	}

	if s.trends != nil && s.trends.Configured() {
		for _, topic := range s.cfg.Topics {
			kws, err := s.trends.TopKeywords(ctx, topic)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				stats.Errors++
				if errors.Is(err, trends.ErrRateLimited) {
					s.logger.Warn().Str("topic", topic).Msg("trend source rate limited, skipping remaining topics")
					break
				}
				s.logger.Warn().Err(err).Str("topic", topic).Msg("trend lookup failed")
				continue
			}
			for _, kw := range kws {
				add(kw)
			}
		}
	}

	if len(found) < s.cfg.MinKeywords {
		stats.UsedFallback = true
		for _, kw := range s.cfg.Fallback {
			add(kw)
		}
	}
	if s.cfg.MaxKeywords > 0 && len(found) > s.cfg.MaxKeywords {
		found = found[:s.cfg.MaxKeywords]
	}
	stats.Fetched = len(found)

	for _, kw := range found {
		added, err := s.keywords.Offer(ctx, kw)
		switch {
		case err != nil:
			stats.Errors++
			s.logger.Warn().Err(err).Str("keyword", kw).Msg("offer keyword failed")
		case added:
			stats.Offered++
		default:
			stats.Duplicates++
		}
	}

	stats.Duration = time.Since(start)
	pending, _ := s.keywords.Len(ctx)

	s.logger.Info().
		Int("fetched", stats.Fetched).
		Int("offered", stats.Offered).
		Int("duplicates", stats.Duplicates).
		Bool("fallback", stats.UsedFallback).
		Int("errors", stats.Errors).
		Int("pending", pending).
		Dur("duration", stats.Duration).
		Msg("keyword discovery completed")

	return stats, nil
}

// GenerateNext turns the next pending keyword into a published article. With
// an empty queue it returns (nil, nil) and writes nothing.
func (s *GeneratorService) GenerateNext(ctx context.Context) (*domain.Article, error) {
	kw, ok, err := s.keywords.Poll(ctx)
	if err != nil {
		return nil, fmt.Errorf("poll keyword: %w", err)
	}
	if !ok {
		return nil, nil
	}

	log := s.logger.With().Str("keyword", kw).Logger()
	log.Info().Msg("generating article")

	res := s.ai.Generate(ctx, gateway.Request{
		Agent:       generatorAgent,
		Action:      "generate_article",
		System:      generatorSystemPrompt,
		Prompt:      articlePrompt(kw),
		MaxTokens:   articleMaxTokens,
		Temperature: articleSampleTemp,
	})
	if !res.OK() {
		return nil, fmt.Errorf("generate article for %q: %w", kw, res.Err)
	}

	draft := gateway.ParseArticleDraft(res.Text, kw)
	images := s.fetchImages(ctx, kw)

	id, err := s.articles.NextSequentialID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	excerpt := draft.Excerpt
	a := &domain.Article{
		ID:          id,
		Title:       draft.Title,
		Slug:        draft.Slug,
		Content:     markup.Normalize(s.interleaveImages(draft.Content, images[1:])),
		Excerpt:     &excerpt,
		Category:    MapCategory(draft.Category),
		Status:      domain.StatusPublished,
		Language:    s.cfg.DefaultLanguage,
		Thumbnail:   &images[0].URL,
		Tags:        []string{kw},
		PublishTime: &now,
		PublishedAt: &now,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.articles.Create(txCtx, a); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		return s.tags.ReplaceForArticle(txCtx, a.ID, a.Tags)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("article_id", a.ID).
		Str("category", string(a.Category)).
		Str("source", string(res.Source)).
		Msg("article generated and published")

	if s.followUp != nil {
		s.followUp.AfterCreate(ctx, a)
	}
	return a, nil
}

// fetchImages always returns at least one image, using placeholders when the
// image source is unconfigured or fails.
func (s *GeneratorService) fetchImages(ctx context.Context, kw string) []domain.Image {
	if s.images == nil || !s.images.Configured() {
		return placeholderImages(kw, s.cfg.ImageCount)
	}

	imgs, err := s.images.SearchImages(ctx, kw, s.cfg.ImageCount)
	if err != nil || len(imgs) == 0 {
		s.logger.Warn().Err(err).Str("keyword", kw).Msg("image search failed, using placeholders")
		return placeholderImages(kw, s.cfg.ImageCount)
	}
	return imgs
}

func placeholderImages(kw string, n int) []domain.Image {
	if n <= 0 {
		n = 1
	}
	out := make([]domain.Image, n)
	for i := range out {
		out[i] = domain.Image{
			URL: fmt.Sprintf("https://via.placeholder.com/1200x800?text=%s+%d", url.QueryEscape(kw), i+1),
			Alt: fmt.Sprintf("Image about %s %d", kw, i+1),
		}
	}
	return out
}

// interleaveImages places up to three images between inner paragraphs of
// content. Content with fewer than three paragraphs is returned unchanged.
func (s *GeneratorService) interleaveImages(content string, imgs []domain.Image) string {
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	slots := len(paras) - 2
	if slots < 1 || len(imgs) == 0 {
		return content
	}

	n := min(maxInlineImages, len(imgs), slots)
	positions := s.pick(slots, n)
	sort.Ints(positions)

	before := make(map[int]domain.Image, n)
	for i, p := range positions {
		before[p+1] = imgs[i]
	}

	var b strings.Builder
	for i, p := range paras {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if img, ok := before[i]; ok {
			b.WriteString(imageTag(img))
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	return b.String()
}

func imageTag(img domain.Image) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" style="max-width:100%%;height:auto;margin:20px 0;">`,
		html.EscapeString(img.URL), html.EscapeString(img.Alt))
}

var categoryAliases = map[string]domain.Category{
	"ai models":           domain.CategoryTechnology,
	"tech innovations":    domain.CategoryTechnology,
	"blockchain":          domain.CategoryTechnology,
	"software":            domain.CategoryTechnology,
	"tech":                domain.CategoryTechnology,
	"công nghệ":           domain.CategoryTechnology,
	"healthcare":          domain.CategoryHealth,
	"sức khỏe":            domain.CategoryHealth,
	"y tế":                domain.CategoryHealth,
	"finance and economy": domain.CategoryBusiness,
	"finance":             domain.CategoryBusiness,
	"economy":             domain.CategoryBusiness,
	"kinh tế":             domain.CategoryBusiness,
	"kinh doanh":          domain.CategoryBusiness,
	"tài chính":           domain.CategoryBusiness,
	"chính trị":           domain.CategoryPolitics,
	"sport":               domain.CategorySports,
	"thể thao":            domain.CategorySports,
	"giải trí":            domain.CategoryEntertainment,
	"khoa học":            domain.CategoryScience,
	"world news":          domain.CategoryWorld,
	"thế giới":            domain.CategoryWorld,
	"local news":          domain.CategoryLocal,
	"thời sự":             domain.CategoryLocal,
	"xã hội":              domain.CategoryLocal,
}

// LookupCategory maps free-text category names, English or Vietnamese, onto
// the fixed enumeration.
func LookupCategory(raw string) (domain.Category, bool) {
	if c, ok := domain.ParseCategory(raw); ok {
		return c, true
	}
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

// MapCategory is LookupCategory with technology as the default.
func MapCategory(raw string) domain.Category {
	if c, ok := LookupCategory(raw); ok {
		return c
	}
	return domain.CategoryTechnology
}

const generatorSystemPrompt = "Bạn là một nhà báo chuyên nghiệp viết tin tức bằng tiếng Việt."

func articlePrompt(keyword string) string {
	return fmt.Sprintf(`Viết một bài báo hoàn chỉnh về chủ đề: "%s".

Trả lời đúng theo định dạng sau:
TITLE: <tiêu đề hấp dẫn>
SLUG: <slug-khong-dau>
CATEGORY: <một trong: AI Models, Tech Innovations, Blockchain, Healthcare, Finance and Economy, Politics, Sports, Entertainment, Science, World News, Local News>
EXCERPT: <tóm tắt 1-2 câu>
CONTENT:
<nội dung bài viết bằng Markdown, ít nhất 5 đoạn, các đoạn cách nhau bằng một dòng trống>`, keyword)
}
