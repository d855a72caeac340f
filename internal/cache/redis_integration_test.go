//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisQueueTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	ctx       context.Context
}

func TestRedisQueueTestSuite(t *testing.T) {
	suite.Run(t, new(RedisQueueTestSuite))
}

func (s *RedisQueueTestSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, "6379")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
}

func (s *RedisQueueTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisQueueTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func (s *RedisQueueTestSuite) TestOfferPollDedup() {
	q := newRedisQueue(s.client, "test", 0)

	added, err := q.Offer(s.ctx, "Giá vàng")
	s.Require().NoError(err)
	s.True(added)

	added, err = q.Offer(s.ctx, "giá  VÀNG")
	s.Require().NoError(err)
	s.False(added)

	n, err := q.Len(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	kw, ok, err := q.Poll(s.ctx)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Giá vàng", kw)

	added, err = q.Offer(s.ctx, "giá vàng")
	s.Require().NoError(err)
	s.False(added, "seen-set persists after the keyword is consumed")
}

func (s *RedisQueueTestSuite) TestPollEmpty() {
	q := newRedisQueue(s.client, "test", 0)

	kw, ok, err := q.Poll(s.ctx)
	s.NoError(err)
	s.False(ok)
	s.Empty(kw)
}

func (s *RedisQueueTestSuite) TestSurvivesNewClient() {
	first := newRedisQueue(s.client, "test", 0)
	_, err := first.Offer(s.ctx, "bóng đá")
	s.Require().NoError(err)

	second := newRedisQueue(s.client, "test", 0)
	added, err := second.Offer(s.ctx, "bóng đá")
	s.Require().NoError(err)
	s.False(added)

	kw, ok, err := second.Poll(s.ctx)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("bóng đá", kw)
}

func (s *RedisQueueTestSuite) TestBoundedSeenKeepsPending() {
	q := newRedisQueue(s.client, "test", 2)

	for _, kw := range []string{"a", "b", "c"} {
		_, err := q.Offer(s.ctx, kw)
		s.Require().NoError(err)
	}
	seen, err := q.Seen(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, seen)

	kw, _, err := q.Poll(s.ctx)
	s.Require().NoError(err)
	s.Equal("a", kw)

	_, err = q.Offer(s.ctx, "d")
	s.Require().NoError(err)

	added, err := q.Offer(s.ctx, "a")
	s.Require().NoError(err)
	s.True(added)
}
