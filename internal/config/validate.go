package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.ScoringBackendURL == "" {
		return errors.New("SCORING_BACKEND_URL environment variable is required")
	}
	return nil
}
