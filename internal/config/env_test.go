package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvironment_FillsUnsetFields(t *testing.T) {
	t.Setenv(EnvObjectsPath, "/env/objects")
	t.Setenv(EnvOutputDir, "/env/out")
	t.Setenv(EnvTitle, "Env ERD")
	t.Setenv(EnvEngine, "sfdp")
	t.Setenv(EnvMaxObjects, "42")
	t.Setenv(EnvFormats, "svg, png")

	cfg := &ProjectConfig{}
	require.NoError(t, ApplyEnvironment(cfg))

	assert.Equal(t, "/env/objects", cfg.ObjectsPath)
	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, "Env ERD", cfg.Title)
	assert.Equal(t, "sfdp", cfg.Engine)
	assert.Equal(t, 42, cfg.MaxObjects)
	assert.Equal(t, []string{"svg", "png"}, cfg.Formats)
}

func TestApplyEnvironment_ConfigValuesWin(t *testing.T) {
	t.Setenv(EnvObjectsPath, "/env/objects")
	t.Setenv(EnvMaxObjects, "42")
	t.Setenv(EnvFormats, "pdf")

	cfg := &ProjectConfig{
		ObjectsPath: "/config/objects",
		MaxObjects:  10,
		Formats:     []string{"svg"},
	}
	require.NoError(t, ApplyEnvironment(cfg))

	assert.Equal(t, "/config/objects", cfg.ObjectsPath)
	assert.Equal(t, 10, cfg.MaxObjects)
	assert.Equal(t, []string{"svg"}, cfg.Formats)
}

func TestApplyEnvironment_InvalidMaxObjects(t *testing.T) {
	t.Setenv(EnvMaxObjects, "lots")

	err := ApplyEnvironment(&ProjectConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxObjects)
}

func TestApplyEnvironment_EmptyEnvironment(t *testing.T) {
	cfg := &ProjectConfig{}
	require.NoError(t, ApplyEnvironment(cfg))
	assert.Equal(t, ProjectConfig{}, *cfg)
}
