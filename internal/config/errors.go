package config

import "errors"

// Validation errors for configuration files and flags.
var (
	// ErrInvalidFPS indicates a non-positive frame rate.
	ErrInvalidFPS = errors.New("config: fps must be positive")

	// ErrInvalidDiameter indicates a non-positive ball diameter.
	ErrInvalidDiameter = errors.New("config: diameter must be positive")

	// ErrInvalidSpeed indicates an empty or negative speed range.
	ErrInvalidSpeed = errors.New("config: speed range must satisfy 0 <= min < max")

	// ErrInvalidCell indicates a non-positive cell size.
	ErrInvalidCell = errors.New("config: cell size must be positive")

	// ErrInvalidSlop indicates a negative click slop.
	ErrInvalidSlop = errors.New("config: click_slop must not be negative")

	ErrNoCategories      = errors.New("config: at least one category is required")
	ErrInvalidCategory   = errors.New("config: invalid category")
	ErrDuplicateCategory = errors.New("config: duplicate category")
)
