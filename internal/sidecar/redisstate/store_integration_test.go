//go:build integration

package redisstate_test

import (
	"context"
	"testing"
	"time"

	"reddog/internal/sidecar/redisstate"

	"github.com/docker/go-connections/nat"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisStateStoreTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	store     *redisstate.Store
}

func (s *RedisStateStoreTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err, "failed to start redis container")
	s.container = container

	host, err := container.Host(ctx)
	require.NoError(s.T(), err)
	mappedPort, err := container.MappedPort(ctx, nat.Port("6379/tcp"))
	require.NoError(s.T(), err)

	s.client = redis.NewClient(&redis.Options{Addr: host + ":" + mappedPort.Port()})
	require.NoError(s.T(), s.client.Ping(ctx).Err())

	s.store = redisstate.NewWithClient(s.client, "reddog.state.test")
}

func (s *RedisStateStoreTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RedisStateStoreTestSuite) SetupTest() {
	require.NoError(s.T(), s.client.FlushAll(context.Background()).Err())
}

func TestRedisStateStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStateStoreTestSuite))
}

func (s *RedisStateStoreTestSuite) TestMissingKey() {
	value, etag, err := s.store.Get(context.Background(), "nope")

	s.NoError(err)
	s.Nil(value)
	s.Empty(etag)
}

func (s *RedisStateStoreTestSuite) TestCreateThenRead() {
	ctx := context.Background()

	ok, err := s.store.TrySet(ctx, "queue", []byte(`["a"]`), "")
	s.Require().NoError(err)
	s.True(ok)

	value, etag, err := s.store.Get(ctx, "queue")
	s.Require().NoError(err)
	s.JSONEq(`["a"]`, string(value))
	s.NotEmpty(etag)
}

func (s *RedisStateStoreTestSuite) TestCreateFailsWhenKeyExists() {
	ctx := context.Background()

	ok, err := s.store.TrySet(ctx, "queue", []byte(`["a"]`), "")
	s.Require().NoError(err)
	s.Require().True(ok)

	// empty etag asserts creation, so an existing key must conflict
	ok, err = s.store.TrySet(ctx, "queue", []byte(`["b"]`), "")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisStateStoreTestSuite) TestStaleEtagConflicts() {
	ctx := context.Background()

	ok, err := s.store.TrySet(ctx, "queue", []byte(`["a"]`), "")
	s.Require().NoError(err)
	s.Require().True(ok)

	_, staleEtag, err := s.store.Get(ctx, "queue")
	s.Require().NoError(err)

	ok, err = s.store.TrySet(ctx, "queue", []byte(`["a","b"]`), staleEtag)
	s.Require().NoError(err)
	s.Require().True(ok)

	// first writer advanced the version, the stale token must now lose
	ok, err = s.store.TrySet(ctx, "queue", []byte(`["a","c"]`), staleEtag)
	s.Require().NoError(err)
	s.False(ok)

	value, _, err := s.store.Get(ctx, "queue")
	s.Require().NoError(err)
	s.JSONEq(`["a","b"]`, string(value))
}

func (s *RedisStateStoreTestSuite) TestEtagAdvancesPerWrite() {
	ctx := context.Background()

	ok, err := s.store.TrySet(ctx, "queue", []byte(`1`), "")
	s.Require().NoError(err)
	s.Require().True(ok)

	_, first, err := s.store.Get(ctx, "queue")
	s.Require().NoError(err)

	ok, err = s.store.TrySet(ctx, "queue", []byte(`2`), first)
	s.Require().NoError(err)
	s.Require().True(ok)

	_, second, err := s.store.Get(ctx, "queue")
	s.Require().NoError(err)
	s.NotEqual(first, second)
}

func (s *RedisStateStoreTestSuite) TestStoresAreIsolatedByName() {
	ctx := context.Background()
	other := redisstate.NewWithClient(s.client, "reddog.state.other")

	ok, err := s.store.TrySet(ctx, "queue", []byte(`"mine"`), "")
	s.Require().NoError(err)
	s.Require().True(ok)

	value, etag, err := other.Get(ctx, "queue")
	s.Require().NoError(err)
	s.Nil(value)
	s.Empty(etag)
}
