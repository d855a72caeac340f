package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/gateway"
	"news_pipeline/internal/queue"
	"news_pipeline/internal/service/mocks"
	"news_pipeline/testdata/utils"
)

type TranslationServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles     *mocks.MockArticleStore
	translations *mocks.MockTranslationStore
	ai           *mocks.MockAI

	service *TranslationService
}

func (s *TranslationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.translations = mocks.NewMockTranslationStore(s.ctrl)
	s.ai = mocks.NewMockAI(s.ctrl)
	s.service = NewTranslationService(s.articles, s.translations, s.ai, zerolog.Nop())
}

func (s *TranslationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTranslationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TranslationServiceTestSuite))
}

func (s *TranslationServiceTestSuite) vietnamese() *domain.Article {
	return &domain.Article{
		ID:       "a3",
		Title:    "Xin chào thế giới",
		Content:  "Đoạn một.\n\nĐoạn hai.",
		Excerpt:  utils.Ptr("Tóm tắt"),
		Language: "vi",
	}
}

func (s *TranslationServiceTestSuite) TestTranslate_PromptFallbackRecordsProvider() {
	ctx := context.Background()

	s.translations.EXPECT().Get(ctx, "a3", "en").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().Get(ctx, "a3").Return(s.vietnamese(), nil)
	s.ai.EXPECT().DetectLanguage(ctx, "Xin chào thế giới").Return("vi")
	s.ai.EXPECT().Translate(ctx, gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req gateway.TranslateRequest) (gateway.Translation, error) {
			s.Equal("en", req.Target)
			s.Equal("vi", req.Source)
			switch req.Kind {
			case "title":
				return gateway.Translation{Text: " Hello world ", Provider: "gemini"}, nil
			case "content":
				return gateway.Translation{Text: "Paragraph one.\n\nParagraph two.", Provider: "gemini"}, nil
			default:
				return gateway.Translation{Text: "Summary", Provider: "gemini"}, nil
			}
		},
	)
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	t, err := s.service.Translate(ctx, "a3", "EN")

	s.Require().NoError(err)
	s.Equal("a3", t.ArticleID)
	s.Equal("en", t.Language)
	s.Equal("Hello world", t.Title)
	s.Contains(t.Content, "<p>Paragraph one.</p>")
	s.Equal("gemini", t.Provider)
	s.Require().NotNil(t.Excerpt)
	s.Equal("Summary", *t.Excerpt)
}

func (s *TranslationServiceTestSuite) TestTranslate_ExistingRecordIsReturned() {
	ctx := context.Background()
	stored := &domain.Translation{ArticleID: "a3", Language: "en", Title: "Hello", Provider: "google"}
	s.translations.EXPECT().Get(ctx, "a3", "en").Return(stored, nil)

	t, err := s.service.Translate(ctx, "a3", "en")

	s.NoError(err)
	s.Same(stored, t)
}

func (s *TranslationServiceTestSuite) TestTranslate_SameLanguageCopiesOriginal() {
	ctx := context.Background()
	a := s.vietnamese()

	s.translations.EXPECT().Get(ctx, "a3", "vi").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().Get(ctx, "a3").Return(a, nil)
	s.ai.EXPECT().DetectLanguage(ctx, a.Title).Return("vi")
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	t, err := s.service.Translate(ctx, "a3", "vi")

	s.Require().NoError(err)
	s.Equal(ProviderOriginal, t.Provider)
	s.Equal(a.Title, t.Title)
	s.Equal(a.Content, t.Content)
}

func (s *TranslationServiceTestSuite) TestTranslate_ExcerptFailureIsTolerated() {
	ctx := context.Background()

	s.translations.EXPECT().Get(ctx, "a3", "en").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().Get(ctx, "a3").Return(s.vietnamese(), nil)
	s.ai.EXPECT().DetectLanguage(ctx, gomock.Any()).Return("vi")
	s.ai.EXPECT().Translate(ctx, gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req gateway.TranslateRequest) (gateway.Translation, error) {
			if req.Kind == "excerpt" {
				return gateway.Translation{}, gateway.ErrNoTranslation
			}
			return gateway.Translation{Text: "ok", Provider: "google"}, nil
		},
	)
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	t, err := s.service.Translate(ctx, "a3", "en")

	s.Require().NoError(err)
	s.Nil(t.Excerpt)
	s.Equal("google", t.Provider)
}

func (s *TranslationServiceTestSuite) TestTranslate_ProviderFailureStoresNothing() {
	ctx := context.Background()

	s.translations.EXPECT().Get(ctx, "a3", "en").Return(nil, domain.ErrNotFound)
	s.articles.EXPECT().Get(ctx, "a3").Return(s.vietnamese(), nil)
	s.ai.EXPECT().DetectLanguage(ctx, gomock.Any()).Return("vi")
	s.ai.EXPECT().Translate(ctx, gomock.Any()).Return(gateway.Translation{}, gateway.ErrNoTranslation)

	_, err := s.service.Translate(ctx, "a3", "en")

	s.ErrorIs(err, gateway.ErrNoTranslation)
}

func (s *TranslationServiceTestSuite) TestTranslate_ConcurrentCallersShareOneRun() {
	ctx := context.Background()
	release := make(chan struct{})

	s.translations.EXPECT().Get(gomock.Any(), "a3", "en").DoAndReturn(
		func(context.Context, string, string) (*domain.Translation, error) {
			<-release
			return &domain.Translation{ArticleID: "a3", Language: "en", Title: "Hello"}, nil
		},
	).Times(1)

	var wg sync.WaitGroup
	results := make([]*domain.Translation, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			t, err := s.service.Translate(ctx, "a3", "en")
			s.NoError(err)
			results[i] = t
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, t := range results {
		s.Require().NotNil(t)
		s.Equal("Hello", t.Title)
	}
}

func (s *TranslationServiceTestSuite) TestTranslate_Validation() {
	_, err := s.service.Translate(context.Background(), "bad id", "en")
	s.ErrorIs(err, domain.ErrInvalidID)

	_, err = s.service.Translate(context.Background(), "a3", "  ")
	s.Error(err)
}

func (s *TranslationServiceTestSuite) TestHandleTask() {
	ctx := context.Background()

	s.Run("missing article is acked", func() {
		s.translations.EXPECT().Get(ctx, "a9", "en").Return(nil, domain.ErrNotFound)
		s.articles.EXPECT().Get(ctx, "a9").Return(nil, domain.ErrNotFound)

		s.NoError(s.service.HandleTask(ctx, domain.TranslationTask{ArticleID: "a9", Language: "en"}))
	})

	s.Run("invalid id is malformed", func() {
		err := s.service.HandleTask(ctx, domain.TranslationTask{ArticleID: "x;y", Language: "en"})
		s.ErrorIs(err, queue.ErrMalformed)
	})

	s.Run("store failure is redelivered", func() {
		s.translations.EXPECT().Get(ctx, "a3", "en").Return(nil, errors.New("connection refused"))

		err := s.service.HandleTask(ctx, domain.TranslationTask{ArticleID: "a3", Language: "en"})
		s.Error(err)
		s.NotErrorIs(err, queue.ErrMalformed)
	})
}

type translatorFunc func(ctx context.Context, id, lang string) (*domain.Translation, error)

func (f translatorFunc) Translate(ctx context.Context, id, lang string) (*domain.Translation, error) {
	return f(ctx, id, lang)
}

func TestBackgroundTranslator_RunsSubmittedJobs(t *testing.T) {
	var calls atomic.Int32
	bt := NewBackgroundTranslator(translatorFunc(func(_ context.Context, id, lang string) (*domain.Translation, error) {
		calls.Add(1)
		if id == "boom" {
			panic("provider exploded")
		}
		return &domain.Translation{ArticleID: id, Language: lang}, nil
	}), 2, 10, time.Second, zerolog.Nop())

	bt.Start(context.Background())
	require.True(t, bt.Submit("a1", "en"))
	require.True(t, bt.Submit("boom", "en"))
	require.True(t, bt.Submit("a2", "en"))
	bt.Stop()

	assert.Equal(t, int32(3), calls.Load())
	assert.False(t, bt.Submit("a3", "en"), "closed pool refuses jobs")
}

func TestBackgroundTranslator_FullBufferDropsJob(t *testing.T) {
	block := make(chan struct{})
	bt := NewBackgroundTranslator(translatorFunc(func(context.Context, string, string) (*domain.Translation, error) {
		<-block
		return nil, nil
	}), 1, 1, time.Second, zerolog.Nop())

	// Nothing consumes until Start, so the second job finds the buffer full.
	assert.True(t, bt.Submit("a1", "en"))
	assert.False(t, bt.Submit("a2", "en"))

	bt.Start(context.Background())
	close(block)
	bt.Stop()
}

func TestBackgroundTranslator_JobTimeout(t *testing.T) {
	done := make(chan error, 1)
	bt := NewBackgroundTranslator(translatorFunc(func(ctx context.Context, _, _ string) (*domain.Translation, error) {
		<-ctx.Done()
		done <- ctx.Err()
		return nil, ctx.Err()
	}), 1, 1, 20*time.Millisecond, zerolog.Nop())

	bt.Start(context.Background())
	require.True(t, bt.Submit("a1", "en"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("job was not cancelled")
	}
	bt.Stop()
}
