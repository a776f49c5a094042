package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	RepoPath           string
	ExceptionsDir      string
	ErrorsDir          string
	DictionaryDir      string
	SpellLanguage      string
	WorkerCount        int
	FrequencyThreshold int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	return &Config{
		RepoPath:           getEnv("REPO_PATH", ""),
		ExceptionsDir:      getEnv("EXCEPTIONS_DIR", "exceptions"),
		ErrorsDir:          getEnv("ERRORS_DIR", "errors"),
		DictionaryDir:      getEnv("DICTIONARY_DIR", "dictionaries"),
		SpellLanguage:      getEnv("SPELL_LANGUAGE", "it_IT"),
		WorkerCount:        getEnvInt("WORKER_COUNT", 8),
		FrequencyThreshold: getEnvInt("FREQUENCY_THRESHOLD", 4),
	}
}

// Validate checks that all startup requirements are met. Any failure here is
// fatal: the run never starts with a partial setup.
func (c *Config) Validate() error {
	if c.RepoPath == "" {
		return fmt.Errorf("missing repository path: pass it as an argument or set REPO_PATH")
	}
	info, err := os.Stat(c.RepoPath)
	if err != nil {
		return fmt.Errorf("stat repository path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repository path is not a directory: %s", c.RepoPath)
	}
	for _, dir := range []string{c.ExceptionsDir, c.ErrorsDir, c.DictionaryDir} {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("stat %s: %w", dir, err)
		}
	}
	return nil
}

// DictionaryPaths returns the .aff and .dic paths for the configured language.
func (c *Config) DictionaryPaths() (affPath, dicPath string) {
	return filepath.Join(c.DictionaryDir, c.SpellLanguage+".aff"),
		filepath.Join(c.DictionaryDir, c.SpellLanguage+".dic")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
