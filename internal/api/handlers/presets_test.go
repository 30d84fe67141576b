package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"risk-reward/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPresets(t *testing.T) {
	dir := t.TempDir()
	content := `
preset:
  name: crypto
  description: Micro-priced crypto pair
  inputs:
    avg_price: 0.008
    tick_size: 0.001
    tick_value: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crypto.yaml"), []byte(content), 0o644))
	t.Setenv("PRESET_DIR", dir)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/presets", NewPresetHandler().ListPresets)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Presets []models.PresetInfo `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Presets, 1)
	assert.Equal(t, "crypto", resp.Presets[0].Name)
	assert.InDelta(t, 0.001, resp.Presets[0].Inputs.TickSize, 1e-12)
}

func TestListPresets_MissingDirYieldsEmptyList(t *testing.T) {
	t.Setenv("PRESET_DIR", filepath.Join(t.TempDir(), "does-not-exist"))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/presets", NewPresetHandler().ListPresets)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Presets []models.PresetInfo `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Presets)
}
