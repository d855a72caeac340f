package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/keywords"
	"news_pipeline/internal/service/mocks"
	"news_pipeline/internal/source/trends"
)

type GeneratorServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	trends    *mocks.MockTrendSource
	images    *mocks.MockImageSource
	queue     *keywords.MemoryQueue
	ai        *mocks.MockAI
	articles  *mocks.MockArticleStore
	tags      *mocks.MockTagStore
	txManager *mocks.MockTransactionManager
	followUp  *mocks.MockFollowUp

	cfg     GeneratorConfig
	service *GeneratorService
	now     time.Time
}

func (s *GeneratorServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.trends = mocks.NewMockTrendSource(s.ctrl)
	s.images = mocks.NewMockImageSource(s.ctrl)
	s.queue = keywords.NewMemoryQueue(0)
	s.ai = mocks.NewMockAI(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.tags = mocks.NewMockTagStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.followUp = mocks.NewMockFollowUp(s.ctrl)

	s.cfg = GeneratorConfig{
		Topics:      []string{"technology", "sports"},
		MinKeywords: 3,
		MaxKeywords: 20,
		Fallback:    []string{"AI", "blockchain", "giá vàng"},
		ImageCount:  4,
	}
	s.now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.build()
}

func (s *GeneratorServiceTestSuite) build() {
	s.service = NewGeneratorService(s.trends, s.images, s.queue, s.ai, s.articles, s.tags, s.txManager, s.followUp, s.cfg, zerolog.Nop())
	s.service.now = func() time.Time { return s.now }
	s.service.pick = func(_, k int) []int {
		out := make([]int, k)
		for i := range out {
			out[i] = i
		}
		return out
	}
}

func (s *GeneratorServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGeneratorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorServiceTestSuite))
}

func keywordList(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i)
	}
	return out
}

func (s *GeneratorServiceTestSuite) TestDiscover_SecondPassOnlyOffersUnseen() {
	ctx := context.Background()
	s.cfg.Topics = []string{"technology"}
	s.build()

	first := keywordList("kw", 10)
	s.trends.EXPECT().Configured().Return(true).Times(2)
	s.trends.EXPECT().TopKeywords(ctx, "technology").Return(first, nil)

	stats, err := s.service.Discover(ctx)
	s.Require().NoError(err)
	s.Equal(10, stats.Offered)
	s.False(stats.UsedFallback)

	// The first three were already seen; case and spacing do not matter.
	second := append([]string{"kw 0", "KW 1", "kw  2"}, keywordList("new", 7)...)
	s.trends.EXPECT().TopKeywords(ctx, "technology").Return(second, nil)

	stats, err = s.service.Discover(ctx)
	s.Require().NoError(err)
	s.Equal(7, stats.Offered)
	s.Equal(3, stats.Duplicates)

	n, _ := s.queue.Len(ctx)
	s.Equal(17, n)
}

func (s *GeneratorServiceTestSuite) TestDiscover_FallbackWhenTooFew() {
	ctx := context.Background()
	s.trends.EXPECT().Configured().Return(true)
	s.trends.EXPECT().TopKeywords(ctx, "technology").Return([]string{"AI"}, nil)
	s.trends.EXPECT().TopKeywords(ctx, "sports").Return(nil, errors.New("502 bad gateway"))

	stats, err := s.service.Discover(ctx)

	s.Require().NoError(err)
	s.True(stats.UsedFallback)
	s.Equal(1, stats.Errors)
	s.Equal(3, stats.Offered, "fallback AI collapses with the trending AI")
}

func (s *GeneratorServiceTestSuite) TestDiscover_RateLimitStopsTopicLoop() {
	ctx := context.Background()
	s.trends.EXPECT().Configured().Return(true)
	s.trends.EXPECT().TopKeywords(ctx, "technology").Return(nil, trends.ErrRateLimited)

	stats, err := s.service.Discover(ctx)

	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
	s.True(stats.UsedFallback)
}

func (s *GeneratorServiceTestSuite) TestDiscover_UnconfiguredSourceUsesFallback() {
	s.trends.EXPECT().Configured().Return(false)

	stats, err := s.service.Discover(context.Background())

	s.Require().NoError(err)
	s.True(stats.UsedFallback)
	s.Equal(3, stats.Fetched)
}

func (s *GeneratorServiceTestSuite) TestDiscover_CapsAtMaxKeywords() {
	ctx := context.Background()
	s.cfg.Topics = []string{"technology"}
	s.cfg.MaxKeywords = 5
	s.build()

	s.trends.EXPECT().Configured().Return(true)
	s.trends.EXPECT().TopKeywords(ctx, "technology").Return(keywordList("kw", 12), nil)

	stats, err := s.service.Discover(ctx)

	s.Require().NoError(err)
	s.Equal(5, stats.Fetched)
	s.Equal(5, stats.Offered)
}

func (s *GeneratorServiceTestSuite) TestGenerateNext_EmptyQueueWritesNothing() {
	a, err := s.service.GenerateNext(context.Background())
	s.NoError(err)
	s.Nil(a)
}

func (s *GeneratorServiceTestSuite) TestGenerateNext_ProviderFailureWritesNothing() {
	ctx := context.Background()
	_, _ = s.queue.Offer(ctx, "giá vàng")

	s.ai.EXPECT().Generate(ctx, gomock.Any()).Return(gateway.Result{
		Text: "Xin lỗi", Source: gateway.SourceFallback, Err: errors.New("timeout"),
	})

	a, err := s.service.GenerateNext(ctx)
	s.Error(err)
	s.Nil(a)
}

func (s *GeneratorServiceTestSuite) TestGenerateNext_PublishesArticleWithPlaceholders() {
	ctx := context.Background()
	_, _ = s.queue.Offer(ctx, "giá vàng")

	raw := strings.Join([]string{
		"TITLE: Giá vàng tăng kỷ lục",
		"SLUG: gia-vang-tang-ky-luc",
		"CATEGORY: Finance and Economy",
		"EXCERPT: Giá vàng lập đỉnh.",
		"CONTENT:",
		"Đoạn một.", "", "Đoạn hai.", "", "Đoạn ba.", "", "Đoạn bốn.",
	}, "\n")

	s.ai.EXPECT().Generate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req gateway.Request) gateway.Result {
		s.Equal(8000, req.MaxTokens)
		s.Contains(req.Prompt, "giá vàng")
		return gateway.Result{Text: raw, Source: gateway.SourceStructured}
	})
	s.images.EXPECT().Configured().Return(false)
	s.articles.EXPECT().NextSequentialID(ctx).Return("101", nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)
	s.articles.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	s.tags.EXPECT().ReplaceForArticle(ctx, "101", []string{"giá vàng"}).Return(nil)
	s.followUp.EXPECT().AfterCreate(ctx, gomock.Any())

	a, err := s.service.GenerateNext(ctx)

	s.Require().NoError(err)
	s.Equal("101", a.ID)
	s.Equal("Giá vàng tăng kỷ lục", a.Title)
	s.Equal(domain.CategoryBusiness, a.Category)
	s.Equal(domain.StatusPublished, a.Status)
	s.Equal(s.now, *a.PublishedAt)
	s.Equal(s.now, *a.PublishTime)
	s.Equal("vi", a.Language)
	s.Equal("https://via.placeholder.com/1200x800?text=gi%C3%A1+v%C3%A0ng+1", *a.Thumbnail)
	s.Equal(2, strings.Count(a.Content, "<img "), "four paragraphs leave two inner slots")
	s.Contains(a.Content, "<p>Đoạn bốn.</p>")

	n, _ := s.queue.Len(ctx)
	s.Zero(n)
}

func (s *GeneratorServiceTestSuite) TestFetchImages_SearchFailureUsesPlaceholders() {
	ctx := context.Background()
	s.images.EXPECT().Configured().Return(true)
	s.images.EXPECT().SearchImages(ctx, "AI", 4).Return(nil, errors.New("403"))

	imgs := s.service.fetchImages(ctx, "AI")

	s.Len(imgs, 4)
	s.Equal("Image about AI 1", imgs[0].Alt)
}

func (s *GeneratorServiceTestSuite) TestInterleaveImages() {
	imgs := []domain.Image{{URL: "u1", Alt: "a1"}, {URL: "u2", Alt: "a2"}, {URL: "u3", Alt: "a3"}, {URL: "u4", Alt: "a4"}}

	s.Run("places one image before each inner paragraph", func() {
		content := "P0\n\nP1\n\nP2\n\nP3\n\nP4"
		out := s.service.interleaveImages(content, imgs)

		parts := strings.Split(out, "\n\n")
		s.Equal([]string{
			"P0",
			imageTag(imgs[0]), "P1",
			imageTag(imgs[1]), "P2",
			imageTag(imgs[2]), "P3",
			"P4",
		}, parts)
	})

	s.Run("short content is unchanged", func() {
		s.Equal("P0\n\nP1", s.service.interleaveImages("P0\n\nP1", imgs))
	})

	s.Run("no images", func() {
		s.Equal("P0\n\nP1\n\nP2", s.service.interleaveImages("P0\n\nP1\n\nP2", nil))
	})
}

func TestImageTagEscapes(t *testing.T) {
	tag := imageTag(domain.Image{URL: `https://x/?a=1&b="2"`, Alt: "<Hà Nội>"})
	assert.Contains(t, tag, `src="https://x/?a=1&amp;b=&#34;2&#34;"`)
	assert.Contains(t, tag, `alt="&lt;Hà Nội&gt;"`)
}

func TestMapCategory(t *testing.T) {
	cases := map[string]domain.Category{
		"Sports":              domain.CategorySports,
		"AI Models":           domain.CategoryTechnology,
		"Finance and Economy": domain.CategoryBusiness,
		"Sức khỏe":            domain.CategoryHealth,
		"World News":          domain.CategoryWorld,
		"something else":      domain.CategoryTechnology,
	}
	for raw, want := range cases {
		assert.Equal(t, want, MapCategory(raw), raw)
	}

	_, ok := LookupCategory("something else")
	assert.False(t, ok)
}
