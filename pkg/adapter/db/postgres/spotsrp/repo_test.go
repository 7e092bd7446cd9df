package spotsrp_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/momeni/jamon-locator/internal/test/dbcontainer"
	"github.com/momeni/jamon-locator/pkg/adapter/db/postgres"
	"github.com/momeni/jamon-locator/pkg/adapter/db/postgres/spotsrp"
	staticrp "github.com/momeni/jamon-locator/pkg/adapter/db/static/spotsrp"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type SpotsRepoTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	Repo *spotsrp.Repo
	dfrs []func()
}

func TestSpotsRepoTestSuite(t *testing.T) {
	if os.Getenv("DOCKER_HOST") == "" {
		t.Skip("DOCKER_HOST is not set; skipping the PostgreSQL tests")
	}
	suite.Run(t, new(SpotsRepoTestSuite))
}

func (srts *SpotsRepoTestSuite) SetupSuite() {
	srts.Ctx = context.Background()
	_, pool, dfrs, ok := dbcontainer.New(srts.Ctx, 2*time.Minute, srts.T())
	srts.dfrs = dfrs
	srts.Require().True(ok, "setting up the test database")
	srts.Pool = pool
	srts.Repo = spotsrp.New(pool)
}

func (srts *SpotsRepoTestSuite) TearDownSuite() {
	for i := len(srts.dfrs) - 1; i >= 0; i-- {
		srts.dfrs[i]()
	}
}

func (srts *SpotsRepoTestSuite) TestCatalogWithoutTable() {
	err := srts.Pool.Conn(srts.Ctx, func(ctx context.Context, c repo.Conn) error {
		_, err := c.Exec(ctx, "DROP TABLE IF EXISTS spots")
		return err
	})
	srts.Require().NoError(err)

	spots, err := srts.Repo.Catalog(srts.Ctx)
	srts.Require().NoError(err)
	srts.NotNil(spots)
	srts.Empty(spots)

	n, err := srts.Repo.Count(srts.Ctx)
	srts.Require().NoError(err)
	srts.Zero(n)
}

func (srts *SpotsRepoTestSuite) TestReplaceAndCatalog() {
	seed, err := staticrp.Seed()
	srts.Require().NoError(err)
	srts.Require().NoError(srts.Repo.Replace(srts.Ctx, seed))

	n, err := srts.Repo.Count(srts.Ctx)
	srts.Require().NoError(err)
	srts.Equal(int64(len(seed)), n)

	spots, err := srts.Repo.Catalog(srts.Ctx)
	srts.Require().NoError(err)
	srts.Equal(seed, spots)

	// replacing again must drop the previous rows
	small := []model.Spot{
		{ID: "z", Coordinate: model.Coordinate{Lat: 1, Lon: 2}, Score: 5},
		{ID: "a", Coordinate: model.Coordinate{Lat: 1, Lon: 2}, Score: 5},
	}
	srts.Require().NoError(srts.Repo.Replace(srts.Ctx, small))
	spots, err = srts.Repo.Catalog(srts.Ctx)
	srts.Require().NoError(err)
	srts.Require().Len(spots, 2)
	srts.Equal("z", spots[0].ID)
	srts.Equal([]string{}, spots[1].Types)
}

func (srts *SpotsRepoTestSuite) TestReplaceIsAtomic() {
	dup := []model.Spot{
		{ID: "d", Coordinate: model.Coordinate{Lat: 1, Lon: 2}, Score: 1},
		{ID: "d", Coordinate: model.Coordinate{Lat: 3, Lon: 4}, Score: 2},
	}
	before, err := srts.Repo.Catalog(srts.Ctx)
	if err != nil {
		srts.Require().NoError(srts.Repo.Replace(srts.Ctx, nil))
		before = []model.Spot{}
	}
	srts.Error(srts.Repo.Replace(srts.Ctx, dup))
	after, err := srts.Repo.Catalog(srts.Ctx)
	srts.Require().NoError(err)
	srts.Equal(before, after)
}
