// Package config provides the settings consumed by the textbook RSA CLI.
//
// Settings are read from the process environment, optionally seeded from a .env file,
// and validated before use so that misconfiguration fails before any evaluation runs.
package config
