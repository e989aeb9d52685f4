package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownArchetype = errors.New("unknown archetype")
	ErrUnknownPickup    = errors.New("unknown pickup")
	ErrUnknownWeapon    = errors.New("unknown weapon")
	ErrUnknownTile      = errors.New("unknown tile")
	ErrUnknownLevel     = errors.New("unknown level")
	ErrNoPlayerStart    = errors.New("missing player start")
	ErrInvalidValue     = errors.New("invalid value")
)

// ConfigError reports malformed rule or level data. It is fatal to the load
// attempt that produced it.
type ConfigError struct {
	Source string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("config %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("config %s: %v: %s", e.Source, e.Err, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(source string, err error, format string, args ...any) *ConfigError {
	return &ConfigError{Source: source, Err: err, Reason: fmt.Sprintf(format, args...)}
}
