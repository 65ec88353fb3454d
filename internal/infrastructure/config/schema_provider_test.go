package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_Schema(t *testing.T) {
	data, err := NewSchemaProvider().Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "dumbwm configuration", doc["title"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)

	gaps, ok := defs["GapsConfig"].(map[string]any)
	require.True(t, ok)
	inner := gaps["properties"].(map[string]any)["inner"].(map[string]any)
	assert.Equal(t, "string", inner["type"])
	assert.Equal(t, lengthPattern, inner["pattern"])

	assert.Contains(t, defs, "WindowRuleConfig")
	assert.Contains(t, string(data), deltaPattern)
}

func TestGenerateSchemaFile(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := GenerateSchemaFile()
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, path, "dumbwm")
}
