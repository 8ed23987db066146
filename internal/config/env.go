package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads KEY=VALUE pairs from the given .env files into the process
// environment. Missing files are skipped and variables already set win.
// With no arguments it reads ./.env.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(ExpandHome(p)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load env %s: %w", p, err)
		}
	}
	return nil
}

// EnvValue returns a non-empty environment variable, or an error naming it.
func EnvValue(name string) (string, error) {
	if name == "" {
		return "", errors.New("config: empty variable name")
	}
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("config: %s is not set", name)
	}
	return v, nil
}
