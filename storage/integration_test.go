//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"

	"characters_back/catalog"
)

// IntegrationTestSuite runs the stores against real Postgres and Redis
// containers.
type IntegrationTestSuite struct {
	suite.Suite
	ctx      context.Context
	postgres *tcpostgres.PostgresContainer
	redisC   *tcredis.RedisContainer
	db       *gorm.DB
	client   *redis.Client
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pg, err := tcpostgres.Run(s.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("characters"),
		tcpostgres.WithUsername("characters"),
		tcpostgres.WithPassword("characters"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.postgres = pg

	dsn, err := pg.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = OpenFromConfig("", dsn)
	s.Require().NoError(err)
	s.Require().NoError(Migrate(s.db))

	rc, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.redisC = rc

	url, err := rc.ConnectionString(s.ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(url)
	s.Require().NoError(err)
	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(s.ctx).Err())
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.redisC != nil {
		_ = testcontainers.TerminateContainer(s.redisC)
	}
	if s.postgres != nil {
		_ = testcontainers.TerminateContainer(s.postgres)
	}
}

func (s *IntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE charaktere, favoriten RESTART IDENTITY").Error)
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
}

func (s *IntegrationTestSuite) TestPostgresCharacterQueries() {
	store := NewCharacterStore(s.db)
	for _, c := range []catalog.Character{
		{Name: "Rick Sanchez", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"},
		{Name: "Morty Smith", Species: "Human", Gender: "Male", Origin: "Earth (C-137)", Status: "Alive"},
		{Name: "Squanchy_100%", Species: "Cat-Person", Gender: "Male", Origin: "unknown", Status: "unknown"},
	} {
		s.Require().NoError(store.Save(s.ctx, &c))
	}

	n, err := store.CountBySpeciesIgnoreCase(s.ctx, "human")
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	list, err := store.FindByNameContainingIgnoreCase(s.ctx, "_100%")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Squanchy_100%", list[0].Name)

	species, err := store.FindDistinctSpecies(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Cat-Person", "Human"}, species)

	s.Require().NoError(store.DeleteByID(s.ctx, 1))
	s.ErrorIs(store.DeleteByID(s.ctx, 1), catalog.ErrNotFound)
}

func (s *IntegrationTestSuite) TestRedisFavorites() {
	store := NewRedisFavoriteStore(s.client)

	for i, name := range []string{"Rick Sanchez", "Morty Smith"} {
		f := &catalog.Favorite{CharacterID: uint64(i + 1), Name: name, Status: "Alive", Image: "avatar.png"}
		s.Require().NoError(store.Save(s.ctx, f))
		s.Equal(uint64(i+1), f.ID)
	}

	list, err := store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Rick Sanchez", list[0].Name)

	s.Require().NoError(store.DeleteByID(s.ctx, 1))
	s.ErrorIs(store.DeleteByID(s.ctx, 1), catalog.ErrNotFound)

	list, err = store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Morty Smith", list[0].Name)
}
