// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sync"
	"testing"

	"github.com/momeni/jamon-locator/pkg/core/cerr"
	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeCatalog struct {
	spots []model.Spot
	err   error
	calls int
	mu    sync.Mutex
}

func (fc *fakeCatalog) Catalog(context.Context) ([]model.Spot, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.calls++
	return fc.spots, fc.err
}

type SpotsUseCaseTestSuite struct {
	suite.Suite

	Ctx     context.Context
	Catalog *fakeCatalog
	UC      *spotsuc.UseCase
}

func TestSpotsUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(SpotsUseCaseTestSuite))
}

func (suts *SpotsUseCaseTestSuite) SetupTest() {
	suts.Ctx = context.Background()
	suts.Catalog = &fakeCatalog{spots: []model.Spot{
		{ID: "S1", Coordinate: center, Score: 3},
		{ID: "S2", Coordinate: northOf(center, 10), Score: 5},
		{ID: "S3", Coordinate: northOf(center, 70), Score: 5},
	}}
	uc, err := spotsuc.New(suts.Catalog)
	suts.Require().NoError(err)
	suts.UC = uc
}

func float64Addr(f float64) *float64 {
	return &f
}

func (suts *SpotsUseCaseTestSuite) assertStatus(err error, status int) {
	var ce *cerr.Error
	if suts.ErrorAs(err, &ce) {
		suts.Equal(status, ce.HTTPStatusCode)
	}
}

func (suts *SpotsUseCaseTestSuite) TestNearbyDefaults() {
	res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{})
	suts.Require().NoError(err)
	suts.Equal(spotsuc.DefaultCenter, res.SearchCenter)
	suts.Equal(spotsuc.DefaultRadius, res.Radius)
	suts.Equal(geo.Miles, res.Unit)
	suts.Equal(2, res.Count)
	suts.Equal([]string{"S2", "S1"}, ids(res.Spots))
}

func (suts *SpotsUseCaseTestSuite) TestNearbyExplicitQuery() {
	res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{
		Center: &model.Coordinate{Lat: center.Lat, Lon: center.Lon},
		Radius: float64Addr(100),
		Unit:   geo.Miles,
	})
	suts.Require().NoError(err)
	suts.Equal([]string{"S2", "S3", "S1"}, ids(res.Spots))
	suts.Equal(3, res.Count)
	suts.Equal(100.0, res.Radius)
}

func (suts *SpotsUseCaseTestSuite) TestNearbyEmptyResultIsNotAnError() {
	far := model.Coordinate{Lat: 40.4168, Lon: -3.7038} // Madrid
	res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{Center: &far})
	suts.Require().NoError(err)
	suts.Zero(res.Count)
	suts.NotNil(res.Spots)
	suts.Empty(res.Spots)
}

func (suts *SpotsUseCaseTestSuite) TestNearbyBadRequests() {
	for _, tc := range []struct {
		name     string
		q        spotsuc.Query
		expected error
	}{
		{
			name:     "latitude",
			q:        spotsuc.Query{Center: &model.Coordinate{Lat: 91}},
			expected: model.ErrLatitudeOutOfRange,
		},
		{
			name:     "longitude",
			q:        spotsuc.Query{Center: &model.Coordinate{Lon: -181}},
			expected: model.ErrLongitudeOutOfRange,
		},
		{
			name: "nan center",
			q: spotsuc.Query{
				Center: &model.Coordinate{Lat: math.NaN()},
			},
			expected: model.ErrNonFiniteCoordinate,
		},
		{
			name:     "negative radius",
			q:        spotsuc.Query{Radius: float64Addr(-1)},
			expected: spotsuc.ErrInvalidRadius,
		},
		{
			name:     "nan radius",
			q:        spotsuc.Query{Radius: float64Addr(math.NaN())},
			expected: spotsuc.ErrInvalidRadius,
		},
		{
			name:     "huge radius",
			q:        spotsuc.Query{Radius: float64Addr(math.Inf(1))},
			expected: spotsuc.ErrRadiusTooLarge,
		},
		{
			name:     "unit",
			q:        spotsuc.Query{Unit: geo.Kilometers},
			expected: spotsuc.ErrUnitMismatch,
		},
	} {
		suts.Run(tc.name, func() {
			res, err := suts.UC.Nearby(suts.Ctx, tc.q)
			suts.Nil(res)
			suts.ErrorIs(err, tc.expected)
			suts.assertStatus(err, http.StatusBadRequest)
		})
	}
	suts.Zero(suts.Catalog.calls, "catalog must not be loaded")
}

func (suts *SpotsUseCaseTestSuite) TestCatalogUnavailable() {
	boom := errors.New("connection refused")
	suts.Catalog.err = boom
	res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{})
	suts.Nil(res)
	suts.ErrorIs(err, spotsuc.ErrCatalogUnavailable)
	suts.ErrorIs(err, boom)
	suts.assertStatus(err, http.StatusServiceUnavailable)

	s, err := suts.UC.Spot(suts.Ctx, "S1")
	suts.Nil(s)
	suts.ErrorIs(err, spotsuc.ErrCatalogUnavailable)
}

func (suts *SpotsUseCaseTestSuite) TestEmptyCatalog() {
	suts.Catalog.spots = nil
	res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{})
	suts.Require().NoError(err)
	suts.Zero(res.Count)
}

func (suts *SpotsUseCaseTestSuite) TestSpot() {
	s, err := suts.UC.Spot(suts.Ctx, "S2")
	suts.Require().NoError(err)
	suts.Equal("S2", s.ID)
	suts.Equal(model.Score(5), s.Score)

	s, err = suts.UC.Spot(suts.Ctx, "missing")
	suts.Nil(s)
	suts.ErrorIs(err, spotsuc.ErrSpotNotFound)
	suts.assertStatus(err, http.StatusNotFound)
}

func (suts *SpotsUseCaseTestSuite) TestConcurrentNearby() {
	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := suts.UC.Nearby(suts.Ctx, spotsuc.Query{
				Radius: float64Addr(100),
			})
			if err == nil {
				results[i] = ids(res.Spots)
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		suts.Equal([]string{"S2", "S3", "S1"}, r)
	}
}

func TestNewOptions(t *testing.T) {
	fc := &fakeCatalog{}
	uc, err := spotsuc.New(fc,
		spotsuc.WithUnit(geo.Kilometers),
		spotsuc.WithDefaultCenter(model.Coordinate{Lat: 40.4, Lon: -3.7}),
		spotsuc.WithDefaultRadius(80),
		spotsuc.WithMaxRadius(500),
	)
	require.NoError(t, err)
	assert.Equal(t, geo.Kilometers, uc.Unit())
	res, err := uc.Nearby(context.Background(), spotsuc.Query{})
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 40.4, Lon: -3.7}, res.SearchCenter)
	assert.Equal(t, 80.0, res.Radius)
	assert.Equal(t, geo.Kilometers, res.Unit)

	_, err = uc.Nearby(context.Background(), spotsuc.Query{
		Radius: float64Addr(501),
	})
	assert.ErrorIs(t, err, spotsuc.ErrRadiusTooLarge)

	for name, opts := range map[string][]spotsuc.Option{
		"bad unit":    {spotsuc.WithUnit("nm")},
		"twice unit":  {spotsuc.WithUnit(geo.Miles), spotsuc.WithUnit(geo.Miles)},
		"bad center":  {spotsuc.WithDefaultCenter(model.Coordinate{Lat: 100})},
		"zero radius": {spotsuc.WithDefaultRadius(0)},
		"nan max":     {spotsuc.WithMaxRadius(math.NaN())},
		"max < def": {
			spotsuc.WithDefaultRadius(60), spotsuc.WithMaxRadius(10),
		},
	} {
		_, err := spotsuc.New(fc, opts...)
		assert.Error(t, err, name)
	}
	_, err = spotsuc.New(nil)
	assert.Error(t, err)
}
