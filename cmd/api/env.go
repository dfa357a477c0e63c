package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar points at an alternative dotenv file.
const envFileVar = "AWM_ENV_FILE"

// loadDotEnv loads variables from $AWM_ENV_FILE, or .env when unset. A
// missing file is fine; variables already in the environment win.
func loadDotEnv() error {
	path := os.Getenv(envFileVar)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
