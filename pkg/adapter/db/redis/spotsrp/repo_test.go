package spotsrp_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/momeni/jamon-locator/pkg/adapter/db/redis/spotsrp"
	staticrp "github.com/momeni/jamon-locator/pkg/adapter/db/static/spotsrp"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisSpotsTestSuite struct {
	suite.Suite

	Ctx  context.Context
	MR   *miniredis.Miniredis
	RDB  *redis.Client
	Repo *spotsrp.Repo
}

func TestRedisSpotsTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSpotsTestSuite))
}

func (rsts *RedisSpotsTestSuite) SetupTest() {
	rsts.Ctx = context.Background()
	rsts.MR = miniredis.RunT(rsts.T())
	rdb, err := spotsrp.Dial(rsts.Ctx, rsts.MR.Addr(), 0)
	rsts.Require().NoError(err)
	rsts.RDB = rdb
	rsts.Repo = spotsrp.New(rdb, "")
}

func (rsts *RedisSpotsTestSuite) TearDownTest() {
	rsts.NoError(rsts.RDB.Close())
}

func (rsts *RedisSpotsTestSuite) TestMissingKeyIsEmpty() {
	spots, err := rsts.Repo.Catalog(rsts.Ctx)
	rsts.Require().NoError(err)
	rsts.NotNil(spots)
	rsts.Empty(spots)
}

func (rsts *RedisSpotsTestSuite) TestReplaceAndCatalog() {
	seed, err := staticrp.Seed()
	rsts.Require().NoError(err)
	rsts.Require().NoError(rsts.Repo.Replace(rsts.Ctx, seed))

	items, err := rsts.MR.List(spotsrp.DefaultKey)
	rsts.Require().NoError(err)
	rsts.Len(items, len(seed))

	spots, err := rsts.Repo.Catalog(rsts.Ctx)
	rsts.Require().NoError(err)
	rsts.Equal(seed, spots)

	one := []model.Spot{
		{ID: "x", Coordinate: model.Coordinate{Lat: 1, Lon: 2}, Score: 4},
	}
	rsts.Require().NoError(rsts.Repo.Replace(rsts.Ctx, one))
	spots, err = rsts.Repo.Catalog(rsts.Ctx)
	rsts.Require().NoError(err)
	rsts.Require().Len(spots, 1)
	rsts.Equal("x", spots[0].ID)

	rsts.Require().NoError(rsts.Repo.Replace(rsts.Ctx, nil))
	rsts.False(rsts.MR.Exists(spotsrp.DefaultKey))
}

func (rsts *RedisSpotsTestSuite) TestCorruptedItem() {
	rsts.MR.RPush(spotsrp.DefaultKey, "{not json")
	_, err := rsts.Repo.Catalog(rsts.Ctx)
	rsts.Error(err)
}

func (rsts *RedisSpotsTestSuite) TestServerDown() {
	const addr = "127.0.0.1:1" // nothing listens here
	rdb := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer rdb.Close()
	_, err := spotsrp.New(rdb, "").Catalog(rsts.Ctx)
	rsts.Error(err)
	_, err = spotsrp.Dial(rsts.Ctx, addr, 0)
	rsts.Error(err)
}
