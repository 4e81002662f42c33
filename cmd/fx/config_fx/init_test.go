package config_fx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"carebuilds/internal/infra"
)

func TestProvideLoggerFallsBackToStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	lc := fxtest.NewLifecycle(t)
	log, err := provideLogger(lc, infra.Config{LogFile: filepath.Join(blocker, "app.log")})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.NotNil(t, log.SugaredLogger)

	lc.RequireStart().RequireStop()
}
