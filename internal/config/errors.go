package config

import (
	"errors"
)

// Sentinel error kinds for this package, so callers can match with
// errors.Is regardless of the wrapping detail.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
