package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials holds the access token obtained from the authentication
// provider. Obtaining and refreshing the token is out of scope; the
// downloader only consumes it.
type Credentials struct {
	AccessToken string `yaml:"access_token"`
}

// LoadCredentials reads credentials from a YAML file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	if creds.AccessToken == "" {
		return nil, fmt.Errorf("credentials file %s has no access_token", path)
	}
	return &creds, nil
}
