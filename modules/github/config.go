package github

import (
	// Stdlib
	"time"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
)

const Id = "github"

type Config struct {
	Token   string
	Owner   string
	Repo    string
	Timeout time.Duration
}

// IsConfigured returns true when the github section is present.
func IsConfigured() bool {
	return config.SectionSet(Id, "token", "owner", "repo")
}

func LoadConfig() (*Config, error) {
	var (
		task = "Load the GitHub configuration"
		cfg  Config
		err  error
	)
	for key, dst := range map[string]*string{
		Id + ".token": &cfg.Token,
		Id + ".owner": &cfg.Owner,
		Id + ".repo":  &cfg.Repo,
	} {
		if *dst, err = config.RequireString(key); err != nil {
			return nil, errs.NewError(task, err)
		}
	}
	if cfg.Timeout, err = config.HTTPTimeout(); err != nil {
		return nil, errs.NewError(task, err)
	}
	return &cfg, nil
}
