package spotsrs

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
)

type rawNearbyReq struct {
	Lat    string `form:"lat" binding:"omitempty,latitude"`
	Lng    string `form:"lng" binding:"omitempty,longitude"`
	Radius string `form:"radius"`
	Unit   string `form:"unit" binding:"omitempty,oneof=mi km"`
}

type rawSpotReq struct {
	SpotID string `uri:"sid" binding:"required,max=64"`
}

// DserNearbyReq deserializes the nearby search query parameters.
// A missing lat or lng takes its value from the default center of the
// use case. The radius accepts any finite floating point notation,
// such as .5 or 1e2. If the request is not acceptable, a 400 response
// will be written and nil will be returned.
func (rs *resource) DserNearbyReq(c *gin.Context) *spotsuc.Query {
	req := &rawNearbyReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	q := &spotsuc.Query{}
	if req.Lat != "" || req.Lng != "" {
		center := rs.spots.DefaultCenter()
		parse(&errs, "lat", req.Lat, &center.Lat)
		parse(&errs, "lng", req.Lng, &center.Lon)
		q.Center = &center
	}
	if req.Radius != "" {
		var r float64
		parse(&errs, "radius", req.Radius, &r)
		q.Radius = &r
	}
	if req.Unit != "" {
		u, err := geo.ParseUnit(req.Unit)
		if serdser.Assert(&errs, err == nil, "unit", "Unknown unit.") {
			q.Unit = u
		}
	}
	if errs == nil {
		return q
	}
	return nil
}

// parse parses s into dst unless s is empty. NaN and infinite values
// are rejected.
func parse(errs *map[string][]string, name, s string, dst *float64) {
	if s == "" {
		return
	}
	f, err := strconv.ParseFloat(s, 64)
	ok := err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	if serdser.Assert(errs, ok, name, "Not a number.") {
		*dst = f
	}
}

// DserSpotID deserializes the sid path parameter. If it is not
// acceptable, a 400 response will be written and an empty string
// will be returned.
func (rs *resource) DserSpotID(c *gin.Context) string {
	req := &rawSpotReq{}
	if ok := serdser.BindUri(c, req); !ok {
		return ""
	}
	return req.SpotID
}
