// Package config handles configuration loading, parsing, and validation
// from a .env file, an optional creatortune.yaml and CREATORTUNE_ prefixed
// environment variables. It provides type-safe access to application
// settings while keeping configuration details separate from the gateway.
package config
