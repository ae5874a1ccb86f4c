package core

import "errors"

var (
	// ErrInvalidDimensions reports grid or tile parameters that cannot form a world.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds reports a pixel or block query outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrIncomplete reports a generation run that left cells unset.
	ErrIncomplete = errors.New("generation left unset cells")
)
