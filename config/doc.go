// Package config loads client configuration from an optional yaml file,
// an optional .env file and KB_-prefixed environment variables, in that
// order of increasing precedence.
package config
