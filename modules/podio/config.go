package podio

import (
	// Stdlib
	"time"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
)

const Id = "podio"

var configKeys = []string{"api_key", "api_secret", "username", "password", "space_id"}

type Config struct {
	APIKey    string
	APISecret string
	Username  string
	Password  string
	SpaceId   string
	Timeout   time.Duration
}

// IsConfigured returns true when the podio section is present.
func IsConfigured() bool {
	return config.SectionSet(Id, configKeys...)
}

// LoadConfig reads the podio section. Every key is required,
// but the password can be entered interactively.
func LoadConfig() (*Config, error) {
	var (
		cfg Config
		err error
	)
	for i, dst := range []*string{&cfg.APIKey, &cfg.APISecret, &cfg.Username, &cfg.Password, &cfg.SpaceId} {
		require := config.RequireString
		if dst == &cfg.Password {
			require = config.RequireSecret
		}
		if *dst, err = require(Id + "." + configKeys[i]); err != nil {
			return nil, errs.NewError("Load the Podio configuration", err)
		}
	}
	if cfg.Timeout, err = config.HTTPTimeout(); err != nil {
		return nil, errs.NewError("Load the Podio configuration", err)
	}
	return &cfg, nil
}
