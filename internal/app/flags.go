package app

import (
	"flag"

	"tileworld/internal/world"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	ConfigPath string
	Atlas      string

	Seed     int64
	Recipe   string
	W, H     int
	Tile     int
	Gradient int

	ViewW, ViewH int
	HUDWidth     int
	Scale        int
	TPS          int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := world.DefaultConfig()
	return &Config{
		Seed:     def.Seed,
		Recipe:   def.Recipe,
		W:        def.Width,
		H:        def.Height,
		Tile:     def.TileSize,
		Gradient: def.GradientSize,
		ViewW:    480,
		ViewH:    360,
		HUDWidth: 240,
		Scale:    2,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world config")
	fs.StringVar(&c.Atlas, "atlas", c.Atlas, "PNG tile atlas, one row of square tiles")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.StringVar(&c.Recipe, "recipe", c.Recipe, "terrain recipe")
	fs.IntVar(&c.W, "w", c.W, "world width in blocks")
	fs.IntVar(&c.H, "h", c.H, "world height in blocks")
	fs.IntVar(&c.Tile, "tile", c.Tile, "tile edge in pixels")
	fs.IntVar(&c.Gradient, "gradient", c.Gradient, "coastline band width in blocks")
	fs.IntVar(&c.ViewW, "view-w", c.ViewW, "viewport width in pixels")
	fs.IntVar(&c.ViewH, "view-h", c.ViewH, "viewport height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width, 0 hides it")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// flagKeys maps world flags to world.Config.Apply keys.
var flagKeys = map[string]string{
	"seed":     "seed",
	"recipe":   "recipe",
	"w":        "w",
	"h":        "h",
	"tile":     "tile",
	"gradient": "gradient",
	"atlas":    "atlas",
}

// World resolves the world config: the YAML file (or defaults) first, then
// every world flag explicitly set on fs.
func (c *Config) World(fs *flag.FlagSet) (world.Config, error) {
	cfg, err := world.LoadConfig(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	cfg = cfg.Apply(overrides)
	return cfg, cfg.Validate()
}
