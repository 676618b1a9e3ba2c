// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files. Load parses each configuration type
// once and serves cached copies afterwards; Reset clears the cache, which is
// mostly useful in tests.
//
//	type Config struct {
//		LogLevel  string `env:"OUTCOME_LOG_LEVEL" envDefault:"info"`
//		JSONCase  string `env:"OUTCOME_JSON_CASE" envDefault:"camel"`
//		JSONIndent bool  `env:"OUTCOME_JSON_INDENT"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be checked with
// errors.Is.
package config
