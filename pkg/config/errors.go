package config

import "errors"

var (
	// ErrReadFile is returned when the configuration file cannot be read.
	ErrReadFile = errors.New("failed to read config file")

	// ErrParseFile is returned when the configuration file is neither valid YAML nor JSON.
	ErrParseFile = errors.New("failed to parse config file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidPort is returned when the resulting port is outside 0..65535.
	ErrInvalidPort = errors.New("invalid port")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")
)
