// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// registration of all resource packages based on the use case
// instances which are created from the user provided configuration
// settings.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin/spotsrs"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
)

// Prefix is the path prefix of the versioned REST APIs.
const Prefix = "/api/jlweb/v1"

// Register instantiates a series of "resource" structs, from packages
// which are named like spotsrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// The spots use case is also served on the legacy /api/jamon path and
// a /healthz endpoint reports the liveness of the server.
func Register(e *gin.Engine, spots *spotsuc.UseCase) {
	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r := e.Group(Prefix)
	spotsrs.Register(r, spots)
	spotsrs.RegisterLegacy(e, spots)
}
