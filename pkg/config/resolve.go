package config

import (
	"errors"
	"io/fs"
	"os"
)

// Resolve builds the configuration a binary runs with. The file at path is
// used when it exists; otherwise the named profile (FLIGHT_PROFILE wins over
// profile). FLIGHT_* overrides are applied last and the result is validated.
func Resolve(path, profile string) (*FlightConfig, bool, error) {
	var (
		config   *FlightConfig
		fromFile bool
		err      error
	)

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fromFile = true
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return nil, false, statErr
		}
	}

	if fromFile {
		config, err = LoadConfig(path)
	} else {
		config, err = Profile(ProfileFromEnv(profile))
	}
	if err != nil {
		return nil, fromFile, err
	}

	if err := ApplyEnv(config); err != nil {
		return nil, fromFile, err
	}
	if err := config.Validate(); err != nil {
		return nil, fromFile, err
	}
	return config, fromFile, nil
}
