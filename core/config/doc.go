// Package config loads the application configuration.
//
// Configuration is read from environment variables (optionally via a .env
// file) with defaults declared as struct tags on the partial config types.
// Nested keys map to underscore-separated variables, e.g. server.port is
// SERVER_PORT and data.bas_prefix is DATA_BAS_PREFIX.
package config
