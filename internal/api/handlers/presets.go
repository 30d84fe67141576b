package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"risk-reward/internal/api/models"
	"risk-reward/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles instrument preset requests
type PresetHandler struct {
	presetDir string
}

// GetPresetDir returns the preset directory path (for debugging)
func (h *PresetHandler) GetPresetDir() string {
	return h.presetDir
}

// NewPresetHandler creates a new preset handler. The directory is
// taken from PRESET_DIR, falling back to examples/presets under the
// working directory.
func NewPresetHandler() *PresetHandler {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "presets")
		} else {
			dir = "./examples/presets"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	log.Printf("PresetHandler: Using preset directory: %s", dir)

	return &PresetHandler{presetDir: dir}
}

// ListPresets handles GET /api/v1/presets. A missing or unreadable
// directory yields an empty list, not an error, so the form still
// works without presets installed.
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	loaded, err := config.ListPresets(h.presetDir)
	if err != nil {
		log.Printf("PresetHandler: Failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, p := range loaded {
		presets = append(presets, models.PresetInfo{
			Name:        p.Name,
			Description: p.Description,
			Inputs: models.PresetValues{
				AvgPrice:           p.Inputs.AvgPrice,
				MaxAgainstPrice:    p.Inputs.MaxAgainstPrice,
				TargetPrice:        p.Inputs.TargetPrice,
				TickSize:           p.Inputs.TickSize,
				NumLots:            p.Inputs.NumLots,
				TickValue:          p.Inputs.TickValue,
				TotalLotsEntryExit: p.Inputs.TotalLotsEntryExit,
				CostPerLot:         p.Inputs.CostPerLot,
				RebatePerLot:       p.Inputs.RebatePerLot,
			},
		})
	}

	log.Printf("PresetHandler: Returning %d presets", len(presets))
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
