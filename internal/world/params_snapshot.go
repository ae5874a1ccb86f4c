package world

import (
	"strconv"

	"tileworld/internal/core"
)

// Parameters reports the settings the current world was generated with.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.st.cfg
	counts := w.st.grid.Counts()

	terrainParams := make([]core.Parameter, 0, len(core.TerrainCategories))
	for _, t := range core.TerrainCategories {
		terrainParams = append(terrainParams, intParam("count_"+t.String(), t.String(), counts[t]))
	}

	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("tile", "Tile size", cfg.TileSize),
				int64Param("seed", "Seed", cfg.Seed),
				stringParam("recipe", "Recipe", cfg.Recipe),
			},
		},
		{
			Name: "Shaping",
			Params: []core.Parameter{
				intParam("gradient", "Gradient size", cfg.GradientSize),
				floatParam("grass_chance", "Grass chance", cfg.GrassChance),
				intParam("grass_size", "Grass size", cfg.GrassSize),
			},
		},
		{
			Name:   "Terrain",
			Params: terrainParams,
		},
		{
			Name: "Items",
			Params: []core.Parameter{
				intParam("items", "Spawned", len(w.st.spawner.Objects())),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings the HUD may adjust. Every accepted
// change regenerates the world.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gradient", Label: "Gradient size", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 12, HasMax: true},
		{Key: "grass_chance", Label: "Grass chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "grass_size", Label: "Grass size", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 20, HasMax: true},
	}
}

// SetIntParameter applies an integer setting and regenerates.
func (w *World) SetIntParameter(key string, value int) bool {
	cfg := w.st.cfg
	switch key {
	case "gradient":
		if value <= 0 {
			return false
		}
		cfg.GradientSize = value
	case "grass_size":
		if value < 0 {
			return false
		}
		cfg.GrassSize = value
	default:
		return false
	}
	return w.Reconfigure(cfg) == nil
}

// SetFloatParameter applies a floating point setting and regenerates.
func (w *World) SetFloatParameter(key string, value float64) bool {
	cfg := w.st.cfg
	switch key {
	case "grass_chance":
		if value < 0 || value > 1 {
			return false
		}
		cfg.GrassChance = value
	default:
		return false
	}
	return w.Reconfigure(cfg) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
