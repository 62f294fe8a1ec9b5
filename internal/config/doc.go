// Package config loads agent client settings from YAML files, dotenv files and
// ACAPY_* environment variables.
package config
