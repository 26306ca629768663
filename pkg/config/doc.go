// Package config loads process configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing the environment into structs with
// `env` and `envDefault` tags. Each configuration type is parsed once and
// cached by type name; Reload and ResetCache clear the cache, which is mostly
// useful in tests.
//
//	if err := config.LoadEnv("testdata/.env"); err != nil {
//		return err
//	}
//	var cfg unitkit.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile, ErrConfigNotLoaded or
// ErrNilPointer and can be checked with errors.Is.
package config
