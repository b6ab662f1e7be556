package app

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app/appflags"
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/prompt"
)

// Init sets up logging and loads the configuration
// according to the global flags.
func Init() error {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))
	if appflags.FlagLogFormat.Value() == appflags.LogFormatJSON {
		if err := log.UseJSON(); err != nil {
			return errs.NewError("Set up JSON logging", err)
		}
	}

	// Missing passwords are asked for in a terminal.
	if prompt.IsInteractive() {
		config.AskSecret = func(key string) (string, error) {
			return prompt.Password(fmt.Sprintf("==> %v: ", key))
		}
	}

	// Load the configuration.
	if appflags.FlagConfig != "" {
		config.SetConfigFile(appflags.FlagConfig)
	}
	return config.Load()
}

func InitOrDie() {
	if err := Init(); err != nil {
		errs.Fatal(err)
	}
}
