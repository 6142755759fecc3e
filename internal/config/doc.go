// Package config manages application settings and credentials.
//
// Settings are stored as JSON; loading merges the file over
// DefaultSettings so partial files work. Credentials live in a
// separate YAML file so the token can be rotated without touching
// settings.
package config
