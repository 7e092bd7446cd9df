// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/momeni/jamon-locator/pkg/adapter/config/settings"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin"
	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/log"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/repo"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
)

// Default values of the server settings.
var (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = settings.Duration(5 * time.Second)
	DefaultReadTimeout       = settings.Duration(10 * time.Second)
	DefaultWriteTimeout      = settings.Duration(15 * time.Second)
	DefaultIdleTimeout       = settings.Duration(time.Minute)
	DefaultShutdownTimeout   = settings.Duration(10 * time.Second)
)

// Server contains the HTTP server settings. Nil timeouts take their
// default values during the normalization.
type Server struct {
	Addr              string             `yaml:"addr"`
	ReadHeaderTimeout *settings.Duration `yaml:"read-header-timeout"`
	ReadTimeout       *settings.Duration `yaml:"read-timeout"`
	WriteTimeout      *settings.Duration `yaml:"write-timeout"`
	IdleTimeout       *settings.Duration `yaml:"idle-timeout"`
	ShutdownTimeout   *settings.Duration `yaml:"shutdown-timeout"`
}

// ValidateAndNormalize fills the missing server settings with their
// default values and ensures that timeouts are positive.
func (s *Server) ValidateAndNormalize() error {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	for _, t := range []struct {
		name string
		d    **settings.Duration
		def  settings.Duration
	}{
		{"read-header-timeout", &s.ReadHeaderTimeout, DefaultReadHeaderTimeout},
		{"read-timeout", &s.ReadTimeout, DefaultReadTimeout},
		{"write-timeout", &s.WriteTimeout, DefaultWriteTimeout},
		{"idle-timeout", &s.IdleTimeout, DefaultIdleTimeout},
		{"shutdown-timeout", &s.ShutdownTimeout, DefaultShutdownTimeout},
	} {
		settings.OverwriteNil(t.d, &t.def)
		if **t.d <= 0 {
			return fmt.Errorf("%s must be positive", t.name)
		}
	}
	return nil
}

// NewServer instantiates an HTTP server which serves h on the
// configured address, respecting the configured timeouts.
func (s Server) NewServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              s.Addr,
		Handler:           h,
		ReadHeaderTimeout: time.Duration(*s.ReadHeaderTimeout),
		ReadTimeout:       time.Duration(*s.ReadTimeout),
		WriteTimeout:      time.Duration(*s.WriteTimeout),
		IdleTimeout:       time.Duration(*s.IdleTimeout),
	}
}

// LogAttrs returns the server settings as a slice of slog attributes.
func (s Server) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", s.Addr),
		log.Valuer("read-header-timeout", s.ReadHeaderTimeout),
		log.Valuer("read-timeout", s.ReadTimeout),
		log.Valuer("write-timeout", s.WriteTimeout),
		log.Valuer("idle-timeout", s.IdleTimeout),
	}
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Gin struct {
	Logger   *bool  // Whether to register the access logger middleware
	Recovery *bool  // Whether to register the gin.Recovery() middleware
	Mode     string // One of debug, release, or test; release if empty
}

// ValidateAndNormalize fills the missing gin settings.
func (g *Gin) ValidateAndNormalize() error {
	settings.Nil2Zero(&g.Logger)
	settings.Nil2Zero(&g.Recovery)
	switch g.Mode {
	case "":
		g.Mode = gin.ReleaseMode
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unsupported gin mode: %q", g.Mode)
	}
	return nil
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. The request identity middleware is always used.
func (g Gin) NewEngine() *gin.Engine {
	gin.SetMode(g.Mode)
	middlewares := make([]gin.HandlerFunc, 0, 3)
	middlewares = append(middlewares, gin.RequestID())
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Spots Spots // spots use cases related settings
}

// Coordinate is the configuration format of a geographical location.
type Coordinate struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Spots contains the configuration settings for the spots use cases.
// Nil fields are left uninitialized, so the use cases layer may select
// their default values.
type Spots struct {
	// Unit is the distance unit of radius and distance values, i.e.,
	// mi or km.
	Unit *string `yaml:"unit"`
	// DefaultCenter is searched around when a query has no center.
	DefaultCenter *Coordinate `yaml:"default-center"`
	// DefaultRadius is used when a query has no radius.
	DefaultRadius *float64 `yaml:"default-radius"`
	// MaxRadius is the inclusive maximum acceptable radius.
	// A missing value indicates that the whole globe may be searched.
	MaxRadius *float64 `yaml:"max-radius"`
}

// ValidateAndNormalize checks the spots settings which can be checked
// without instantiating the use case.
func (s *Spots) ValidateAndNormalize() error {
	if s.Unit != nil {
		if _, err := geo.ParseUnit(*s.Unit); err != nil {
			return err
		}
	}
	if s.DefaultCenter != nil {
		c := model.Coordinate{
			Lat: s.DefaultCenter.Lat, Lon: s.DefaultCenter.Lng,
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("default-center: %w", err)
		}
	}
	err := settings.VerifyRange(
		"max-radius", s.MaxRadius, settings.Min(0.0), nil,
	)
	if err != nil {
		return err
	}
	return settings.VerifyRange(
		"default-radius", s.DefaultRadius,
		settings.Min(0.0), settings.Max("max-radius", s.MaxRadius),
	)
}

// NewUseCase instantiates a new spots use case based on the settings
// in the `s` struct, serving the catalog of the given provider.
func (s Spots) NewUseCase(catalog repo.Spots) (*spotsuc.UseCase, error) {
	opts := make([]spotsuc.Option, 0, 4)
	if s.Unit != nil {
		u, err := geo.ParseUnit(*s.Unit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spotsuc.WithUnit(u))
	}
	if c := s.DefaultCenter; c != nil {
		opts = append(opts, spotsuc.WithDefaultCenter(model.Coordinate{
			Lat: c.Lat, Lon: c.Lng,
		}))
	}
	if s.DefaultRadius != nil {
		opts = append(opts, spotsuc.WithDefaultRadius(*s.DefaultRadius))
	}
	if s.MaxRadius != nil {
		opts = append(opts, spotsuc.WithMaxRadius(*s.MaxRadius))
	}
	return spotsuc.New(catalog, opts...)
}

// Logging contains the default slog logger settings.
type Logging struct {
	Level  string // debug, info, warn, or error; info if empty
	Format string // text or json; text if empty
}

// ValidateAndNormalize checks the logging level and format names.
func (l *Logging) ValidateAndNormalize() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return err
	}
	switch l.Format {
	case "":
		l.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("unsupported logging format: %q", l.Format)
	}
	return nil
}

// NewLogger instantiates a slog logger which writes to w.
func (l Logging) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := log.ParseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: lvl}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
