// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides type-safe
// access to the settings of the demonstration binary while keeping
// configuration details separate from the arithmetic library, which needs none.
package config
