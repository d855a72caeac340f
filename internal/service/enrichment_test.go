package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/queue"
	"news_pipeline/internal/service/mocks"
)

type EnrichmentServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles *mocks.MockArticleStore
	ai       *mocks.MockAI

	service *EnrichmentService
}

func (s *EnrichmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.ai = mocks.NewMockAI(s.ctrl)
	s.service = NewEnrichmentService(s.articles, s.ai, zerolog.Nop())
}

func (s *EnrichmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEnrichmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnrichmentServiceTestSuite))
}

func structured(text string) gateway.Result {
	return gateway.Result{Text: text, Source: gateway.SourceStructured}
}

func (s *EnrichmentServiceTestSuite) draft() *domain.Article {
	return &domain.Article{
		ID:      "a1",
		Title:   "Đội tuyển thắng lớn",
		Content: "<p>Đội tuyển Việt Nam thắng <b>3-0</b>.</p>",
		Status:  domain.StatusDraft,
	}
}

func (s *EnrichmentServiceTestSuite) TestEnrich_SummaryAndCategoryStatusUntouched() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(s.draft(), nil)

	var actions []string
	s.ai.EXPECT().Generate(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, req gateway.Request) gateway.Result {
			actions = append(actions, req.Action)
			s.Equal("a1", req.ArticleID)
			s.NotContains(req.Prompt, "<b>", "provider gets plain text")
			if req.Action == "summarize" {
				return structured("Việt Nam thắng 3-0.")
			}
			s.Contains(req.Prompt, "Việt Nam thắng 3-0.", "categorize sees the summary")
			return structured("Sports")
		},
	)

	sports := domain.CategorySports
	summary := "Việt Nam thắng 3-0."
	s.articles.EXPECT().UpdateEnrichment(ctx, "a1", domain.Enrichment{
		Summary:      &summary,
		SuggestedCat: &sports,
	}).Return(nil)

	err := s.service.Enrich(ctx, domain.EnrichmentTask{
		ArticleID:  "a1",
		Operations: []domain.Operation{domain.OpCategorize, domain.OpSummarize},
	})

	s.NoError(err)
	s.Equal([]string{"summarize", "categorize"}, actions, "canonical order regardless of task order")
}

func (s *EnrichmentServiceTestSuite) TestEnrich_ApologyTextIsNotStored() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(s.draft(), nil)
	s.ai.EXPECT().Generate(ctx, gomock.Any()).Return(gateway.Result{
		Text: "Xin lỗi", Source: gateway.SourceFallback, Err: errors.New("down"),
	})

	err := s.service.Enrich(ctx, domain.EnrichmentTask{ArticleID: "a1", Operations: []domain.Operation{domain.OpSummarize}})
	s.NoError(err)
}

func (s *EnrichmentServiceTestSuite) TestEnrich_AllOperations() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(s.draft(), nil)

	s.ai.EXPECT().Generate(ctx, gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, req gateway.Request) gateway.Result {
			switch domain.Operation(req.Action) {
			case domain.OpSummarize:
				return structured("Tóm tắt.")
			case domain.OpCategorize:
				return structured("gardening")
			case domain.OpHashtags:
				return structured("#BongDa #VietNam bongda")
			case domain.OpKeyPoints:
				return structured("1. Thắng 3-0\n2. Lên ngôi đầu\n\n")
			default:
				return structured("NONE")
			}
		},
	)
	s.ai.EXPECT().Embed(ctx, "a1", gomock.Any()).Return([]float64{0.1, 0.2}, nil)

	s.articles.EXPECT().UpdateEnrichment(ctx, "a1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, e domain.Enrichment) error {
			s.Equal("Tóm tắt.", *e.Summary)
			s.Equal(domain.CategoryLocal, *e.SuggestedCat, "unknown category falls back to local")
			s.Equal([]string{"#bongda", "#vietnam"}, e.Hashtags)
			s.Equal([]string{"Thắng 3-0", "Lên ngôi đầu"}, e.KeyPoints)
			s.NotNil(e.ContentWarnings)
			s.Empty(e.ContentWarnings)
			s.Equal([]float64{0.1, 0.2}, e.Embedding)
			return nil
		},
	)

	err := s.service.Enrich(ctx, domain.EnrichmentTask{ArticleID: "a1", Operations: domain.OperationOrder})
	s.NoError(err)
}

func (s *EnrichmentServiceTestSuite) TestEnrich_UnsupportedEmbeddingSkipped() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(s.draft(), nil)
	s.ai.EXPECT().Embed(ctx, "a1", gomock.Any()).Return(nil, gateway.ErrUnsupported)

	err := s.service.Enrich(ctx, domain.EnrichmentTask{ArticleID: "a1", Operations: []domain.Operation{domain.OpEmbed}})
	s.NoError(err)
}

func (s *EnrichmentServiceTestSuite) TestEnrich_MissingArticleIsAcked() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(nil, domain.ErrNotFound)

	err := s.service.Enrich(ctx, domain.EnrichmentTask{ArticleID: "a1", Operations: []domain.Operation{domain.OpSummarize}})
	s.NoError(err)
}

func (s *EnrichmentServiceTestSuite) TestEnrich_StoreFailureIsRedelivered() {
	ctx := context.Background()
	s.articles.EXPECT().Get(ctx, "a1").Return(s.draft(), nil)
	s.ai.EXPECT().Generate(ctx, gomock.Any()).Return(structured("Tóm tắt."))
	s.articles.EXPECT().UpdateEnrichment(ctx, "a1", gomock.Any()).Return(errors.New("connection reset"))

	err := s.service.Enrich(ctx, domain.EnrichmentTask{ArticleID: "a1", Operations: []domain.Operation{domain.OpSummarize}})
	s.Error(err)
	s.NotErrorIs(err, queue.ErrMalformed)
}

func (s *EnrichmentServiceTestSuite) TestEnrich_InvalidIDIsMalformed() {
	err := s.service.Enrich(context.Background(), domain.EnrichmentTask{ArticleID: "bad id", Operations: []domain.Operation{domain.OpSummarize}})
	s.ErrorIs(err, queue.ErrMalformed)
}

func TestParseCategoryAnswer(t *testing.T) {
	assert.Equal(t, domain.CategoryTechnology, parseCategoryAnswer("Category: Technology."))
	assert.Equal(t, domain.CategoryHealth, parseCategoryAnswer("health (maybe science)"))
	assert.Equal(t, domain.CategoryLocal, parseCategoryAnswer("không rõ"))
}

func TestParseModeration(t *testing.T) {
	assert.Equal(t, []string{}, parseModeration("NONE"))
	assert.Equal(t, []string{"violence", "hate_speech"}, parseModeration("violence, hate speech"))
}
