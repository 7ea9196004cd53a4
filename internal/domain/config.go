package domain

import (
	"fmt"
	"net/url"
)

// ConfigFileName is the default config file looked up next to the
// working directory.
const ConfigFileName = "gitlab-roulette.toml"

// Config represents the merged runtime configuration. Values come from
// the TOML config file with CLI flags taking precedence.
type Config struct {
	URL   string `toml:"url"`   // Web URL of the GitLab project
	Token string `toml:"token"` // GitLab private token
}

// Validate checks that the merged configuration is complete and the
// url is parsable.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if _, err := c.baseURL(); err != nil {
		return err
	}
	return nil
}

// BaseURL returns the GitLab instance origin (scheme://host) derived
// from the project url.
func (c *Config) BaseURL() (string, error) {
	return c.baseURL()
}

func (c *Config) baseURL() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w %q", ErrInvalidURL, c.URL)
	}
	return u.Scheme + "://" + u.Host, nil
}
