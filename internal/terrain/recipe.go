package terrain

import (
	"errors"
	"fmt"
	"sort"

	"tileworld/internal/core"
	prng "tileworld/pkg/core"
)

// ErrUnknownRecipe is returned when a recipe name is not registered.
var ErrUnknownRecipe = errors.New("terrain: unknown recipe")

// Options tunes a recipe run. Zero fields keep the recipe's defaults.
type Options struct {
	GrassChance float64
	GrassSize   int
}

func (o Options) grass(chance float64, size int) (float64, int) {
	if o.GrassChance > 0 {
		chance = o.GrassChance
	}
	if o.GrassSize > 0 {
		size = o.GrassSize
	}
	return chance, size
}

// Recipe runs an ordered sequence of shaper passes over a fresh grid.
type Recipe func(s *Shaper, opts Options)

var recipes = map[string]Recipe{}

// Register adds a recipe under the provided name.
func Register(name string, r Recipe) {
	if name == "" || r == nil {
		return
	}
	recipes[name] = r
}

// Recipes exposes the registry of available recipes.
func Recipes() map[string]Recipe {
	return recipes
}

// Names lists the registered recipe names in sorted order.
func Names() []string {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the recipe registered under name.
func Lookup(name string) (Recipe, error) {
	r, ok := recipes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
	}
	return r, nil
}

// Shape runs the named recipe over grid and verifies that every cell ended
// up with a category.
func Shape(grid *core.Grid, rng *prng.RNG, gradient int, recipe string, opts Options) error {
	r, err := Lookup(recipe)
	if err != nil {
		return err
	}
	r(NewShaper(grid, rng, gradient), opts)
	if n := grid.Unset(); n > 0 {
		return fmt.Errorf("%w: recipe %q left %d cells unset", core.ErrIncomplete, recipe, n)
	}
	return nil
}
