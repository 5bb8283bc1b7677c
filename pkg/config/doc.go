// Package config loads application configuration from environment variables
// into tagged structs, using github.com/caarlos0/env/v11 for parsing and
// github.com/joho/godotenv for optional .env files.
//
// Every package that needs configuration exposes its own struct (see
// notifications.Config, httpserver.Config, redis.Config, mockapi.Config) and
// the binary loads each one once at startup:
//
//	var notifyCfg notifications.Config
//	config.MustLoad(&notifyCfg)
//
// Load caches by type, so repeated calls are cheap and consistent. Parse
// bypasses the cache.
package config
