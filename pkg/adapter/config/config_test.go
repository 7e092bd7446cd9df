package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/jamon-locator/pkg/adapter/config"
	"github.com/momeni/jamon-locator/pkg/adapter/config/cfg1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv(cfg1.EnvAddr, "")
	t.Setenv(cfg1.EnvPort, "")
	t.Setenv(cfg1.EnvCatalogSource, "")
	t.Setenv(cfg1.EnvLogLevel, "")

	c, err := config.Load("../../../configs/sample-config.yaml", false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)

	t.Setenv(cfg1.EnvPort, "3000")
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	c, err = config.Load(missing, true)
	require.NoError(t, err)
	assert.Equal(t, ":3000", c.Server.Addr)
	assert.Equal(t, cfg1.SourceStatic, c.Catalog.Source)

	_, err = config.Load(missing, false)
	assert.ErrorIs(t, err, os.ErrNotExist)

	future := filepath.Join(t.TempDir(), "future.yaml")
	require.NoError(t, os.WriteFile(future, []byte("versions:\n  config: 3.0.0\n"), 0o600))
	_, err = config.Load(future, false)
	assert.Error(t, err)
}
