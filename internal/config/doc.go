// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env and config files). It
// provides type-safe access to the settings needed by the generation API
// server and the web UI while keeping configuration details separate from
// business logic.
package config
