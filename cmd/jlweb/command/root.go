// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the jlweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself, the "nearby"
// sub-command runs one search and prints its result, and the "db"
// sub-command manages the contents of the catalog stores.
//
//	./jlweb [-c /path/of/main/config.yaml]           # start web server
//	./jlweb nearby --lat 33.5 --lng -117.6 --radius 20 [--unit mi]
//	./jlweb db init [--from /path/of/catalog.yaml] [-c config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/momeni/jamon-locator/pkg/adapter/config"
	"github.com/momeni/jamon-locator/pkg/adapter/config/cfg1"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin"
	"github.com/momeni/jamon-locator/pkg/adapter/restful/gin/routes"
	"github.com/momeni/jamon-locator/pkg/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	cfgExplicit bool // if cfgPath was given by the user
)

var rootCmd = &cobra.Command{
	Use:   "jlweb",
	Short: "A jamón spots locator web service",
	Long: `A jamón spots locator web service which finds the places
serving jamón around a geographical center, within a given radius,
and ranks them by their jamón quality score (best first) and then by
their great-circle distance (nearest first).
The catalog of spots may be served from an embedded seed catalog, a
YAML file, a PostgreSQL database, a Redis server, or a MongoDB
deployment, as selected by the configuration file.`,
	RunE:         startWebServer,
	SilenceUsage: true,
}

// loadConfig loads the configuration file and configures the default
// slog logger based on its logging settings.
func loadConfig() (*cfg1.Config, error) {
	c, err := config.Load(cfgPath, !cfgExplicit)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(c.Logging.NewLogger(os.Stderr))
	return c, nil
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, closeCatalog, err := c.Catalog.Provider(ctx)
	if err != nil {
		return fmt.Errorf("creating %s catalog provider: %w", c.Catalog.Source, err)
	}
	defer closeCatalog()
	spots, err := c.Usecases.Spots.NewUseCase(catalog)
	if err != nil {
		return fmt.Errorf("creating spots use case: %w", err)
	}
	var e *gin.Engine = c.Gin.NewEngine()
	routes.Register(e, spots)
	srv := c.Server.NewServer(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	attrs := append(
		c.Server.LogAttrs(), slog.String("catalog", c.Catalog.Source),
	)
	log.Info(ctx, "web server is started", attrs...)
	select {
	case err = <-errCh:
		return fmt.Errorf("running web server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down the web server")
	ctx2, cancel := context.WithTimeout(
		context.Background(), time.Duration(*c.Server.ShutdownTimeout),
	)
	defer cancel()
	if err = srv.Shutdown(ctx2); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running web server: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv, fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// loadDotEnv loads the .env file of the working directory (if any)
// into the environment variables, without overriding the existing ones.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "ignoring the .env file: %v\n", err)
	}
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// Only the default path may be missing, so jlweb can run with its
// default settings and the embedded catalog.
func fixConfigPath() {
	if cfgPath != "" {
		cfgExplicit = true
		return
	}
	if cfgPath, cfgExplicit = os.LookupEnv("CONFIG_FILE"); !cfgExplicit {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
