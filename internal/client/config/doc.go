// Package config loads runtime configuration for the recipe client.
//
// Sources & precedence
//
//  1. Struct defaults (env-default tags).
//  2. Optional YAML/JSON config file selected via -c or -config.
//  3. Environment variables (COOKCLI_*).
//  4. Command-line flags (see parseFlags), which override everything.
//
// File and environment loading is done with cleanenv. Durations in
// environment variables accept the usual "8s" / "2m" forms:
//
//	COOKCLI_API_BASE_URL=http://localhost:4000/api
//	COOKCLI_SESSION_CHECK_TIMEOUT=8s
package config
