// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrs realizes the spots resource, allowing the spots
// searching REST APIs to be accepted and delegated to the spots use
// cases respectively.
package spotsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
)

type resource struct {
	spots *spotsuc.UseCase
}

// Register instantiates a resource adapting the spots use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/jlweb/v1/spots/nearby
//     in order to search and rank the spots around a center,
//  2. GET request to /api/jlweb/v1/spots/:sid
//     in order to fetch one spot,
//  3. GET request to /api/jlweb/v1/spots/:sid/directions
//     in order to be redirected to the driving directions of a spot.
func Register(r *gin.RouterGroup, spots *spotsuc.UseCase) {
	rs := &resource{spots: spots}
	r.GET("spots/nearby", rs.Nearby)
	r.GET("spots/:sid", rs.GetSpot)
	r.GET("spots/:sid/directions", rs.Directions)
}

// RegisterLegacy registers the nearby search on the /api/jamon path
// of the r router with the same query parameters and response format.
func RegisterLegacy(r gin.IRoutes, spots *spotsuc.UseCase) {
	rs := &resource{spots: spots}
	r.GET("/api/jamon", rs.Nearby)
}

func (rs *resource) Nearby(c *gin.Context) {
	q := rs.DserNearbyReq(c)
	if q == nil {
		return
	}
	res, err := rs.spots.Nearby(c, *q)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (rs *resource) GetSpot(c *gin.Context) {
	sid := rs.DserSpotID(c)
	if sid == "" {
		return
	}
	s, err := rs.spots.Spot(c, sid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rs *resource) Directions(c *gin.Context) {
	sid := rs.DserSpotID(c)
	if sid == "" {
		return
	}
	s, err := rs.spots.Spot(c, sid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Redirect(http.StatusFound, s.DirectionsURL())
}
