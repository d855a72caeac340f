package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/service/mocks"
	"news_pipeline/testdata/utils"
)

type LifecycleServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles   *mocks.MockArticleStore
	engagement *mocks.MockEngagementStore
	txManager  *mocks.MockTransactionManager

	service *LifecycleService
	now     time.Time
}

func (s *LifecycleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.engagement = mocks.NewMockEngagementStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.now = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	s.service = NewLifecycleService(s.articles, s.engagement, s.txManager, 12, zerolog.Nop())
	s.service.now = func() time.Time { return s.now }
}

func (s *LifecycleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLifecycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleServiceTestSuite))
}

func (s *LifecycleServiceTestSuite) expectTx() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *LifecycleServiceTestSuite) TestPublish_ApprovedWithoutScheduleIsPublishedNow() {
	ctx := context.Background()
	s.expectTx()

	s.articles.EXPECT().GetForUpdate(ctx, "a2").Return(&domain.Article{ID: "a2", Status: domain.StatusApproved}, nil)
	s.articles.EXPECT().MarkPublished(ctx, "a2", s.now).Return(nil)

	res, err := s.service.Publish(ctx, "a2", PublishRequest{})

	s.Require().NoError(err)
	s.Equal(domain.StatusPublished, res.Status)
	s.Require().NotNil(res.PublishedAt)
	s.Equal(s.now, *res.PublishedAt)
}

func (s *LifecycleServiceTestSuite) TestPublish_FutureManualTimeKeepsApproved() {
	ctx := context.Background()
	s.expectTx()
	at := s.now.Add(3 * time.Hour)

	s.articles.EXPECT().GetForUpdate(ctx, "7").Return(&domain.Article{ID: "7", Status: domain.StatusApproved}, nil)
	s.articles.EXPECT().SchedulePublish(ctx, "7", at).Return(nil)

	res, err := s.service.Publish(ctx, "007", PublishRequest{ManualTime: &at, UseAIScheduling: true})

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, res.Status)
	s.Equal(at, res.PublishTime)
	s.Nil(res.PublishedAt)
}

func (s *LifecycleServiceTestSuite) TestPublish_PastManualTimePublishesNow() {
	ctx := context.Background()
	s.expectTx()

	s.articles.EXPECT().GetForUpdate(ctx, "a2").Return(&domain.Article{ID: "a2", Status: domain.StatusApproved}, nil)
	s.articles.EXPECT().MarkPublished(ctx, "a2", s.now).Return(nil)

	res, err := s.service.Publish(ctx, "a2", PublishRequest{ManualTime: utils.Ptr(s.now.Add(-time.Hour))})

	s.Require().NoError(err)
	s.Equal(domain.StatusPublished, res.Status)
}

func (s *LifecycleServiceTestSuite) TestPublish_AISlotUsesBusiestHour() {
	ctx := context.Background()
	s.expectTx()

	s.articles.EXPECT().GetForUpdate(ctx, "a2").Return(&domain.Article{
		ID: "a2", Status: domain.StatusApproved, Category: domain.CategorySports,
	}, nil)
	s.engagement.EXPECT().ViewsByHour(ctx, domain.CategorySports).Return(map[int]int64{8: 40, 20: 90, 21: 90}, nil)

	want := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	s.articles.EXPECT().SchedulePublish(ctx, "a2", want).Return(nil)

	res, err := s.service.Publish(ctx, "a2", PublishRequest{UseAIScheduling: true})

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, res.Status)
	s.Equal(want, res.PublishTime)
}

func (s *LifecycleServiceTestSuite) TestPublish_NotApprovedIsRejectedWithoutWrites() {
	for _, status := range []domain.Status{
		domain.StatusDraft, domain.StatusPendingReview, domain.StatusPublished, domain.StatusArchived,
	} {
		s.Run(string(status), func() {
			ctx := context.Background()
			s.expectTx()
			s.articles.EXPECT().GetForUpdate(ctx, "a1").Return(&domain.Article{ID: "a1", Status: status}, nil)

			res, err := s.service.Publish(ctx, "a1", PublishRequest{})

			s.ErrorIs(err, domain.ErrNotApproved)
			s.Nil(res)
		})
	}
}

func (s *LifecycleServiceTestSuite) TestPublish_MissingArticle() {
	ctx := context.Background()
	s.expectTx()
	s.articles.EXPECT().GetForUpdate(ctx, "a9").Return(nil, domain.ErrNotFound)

	_, err := s.service.Publish(ctx, "a9", PublishRequest{})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LifecycleServiceTestSuite) TestPublish_InvalidID() {
	_, err := s.service.Publish(context.Background(), "   ", PublishRequest{})
	s.ErrorIs(err, domain.ErrInvalidID)
}

func (s *LifecycleServiceTestSuite) TestSuggestPublishSlot_DefaultHourWithoutHistory() {
	ctx := context.Background()
	s.engagement.EXPECT().ViewsByHour(ctx, domain.CategoryWorld).Return(map[int]int64{}, nil)

	slot := s.service.SuggestPublishSlot(ctx, domain.CategoryWorld, s.now)
	s.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), slot)
}

func (s *LifecycleServiceTestSuite) TestSuggestPublishSlot_PassedHourMovesToTomorrow() {
	ctx := context.Background()
	s.engagement.EXPECT().ViewsByHour(ctx, domain.CategoryWorld).Return(map[int]int64{10: 5}, nil)

	slot := s.service.SuggestPublishSlot(ctx, domain.CategoryWorld, s.now)
	s.Equal(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), slot)
}

func (s *LifecycleServiceTestSuite) TestSuggestPublishSlot_LookupErrorUsesDefault() {
	ctx := context.Background()
	s.engagement.EXPECT().ViewsByHour(ctx, domain.CategoryWorld).Return(nil, errors.New("db down"))

	slot := s.service.SuggestPublishSlot(ctx, domain.CategoryWorld, s.now)
	s.Equal(12, slot.Hour())
}

func (s *LifecycleServiceTestSuite) TestTransition_SetsRecognizedStatus() {
	ctx := context.Background()
	s.articles.EXPECT().UpdateStatus(ctx, "a1", domain.StatusPendingReview).Return(nil)

	s.NoError(s.service.Transition(ctx, "a1", "pending_review"))
}

func (s *LifecycleServiceTestSuite) TestTransition_UnknownStatus() {
	err := s.service.Transition(context.Background(), "a1", "deleted")
	s.ErrorIs(err, domain.ErrUnknownStatus)
}

func (s *LifecycleServiceTestSuite) TestTransition_ToPublishedGoesThroughGuard() {
	ctx := context.Background()
	s.expectTx()
	s.articles.EXPECT().GetForUpdate(ctx, "a1").Return(&domain.Article{ID: "a1", Status: domain.StatusDraft}, nil)

	err := s.service.Transition(ctx, "a1", "published")
	s.ErrorIs(err, domain.ErrNotApproved)
}

func (s *LifecycleServiceTestSuite) TestPromoteDue() {
	ctx := context.Background()
	s.articles.EXPECT().PromoteDue(ctx, s.now).Return([]string{"1", "2"}, nil)

	n, err := s.service.PromoteDue(ctx)
	s.NoError(err)
	s.Equal(2, n)
}
