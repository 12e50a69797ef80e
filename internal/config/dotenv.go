package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnv is the dotenv file read from the working directory.
const DefaultDotEnv = ".env"

// LoadDotEnv sets the variables of path that are not already in the
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// OverloadDotEnv sets every variable of path, replacing values already in
// the environment. Unlike LoadDotEnv, a missing file is an error.
func OverloadDotEnv(path string) error {
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}
