package config

import (
	// Stdlib
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"time"

	// Internal
	"github.com/salsaflow/versionify/errs"

	// Vendor
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ConfigFilename is the name of the configuration file that is looked up
	// in the current working directory unless -config is used.
	ConfigFilename = ".versionify"

	// ConfigType is the format of the configuration file.
	ConfigType = "yaml"

	// EnvPrefix is prepended to every configuration key when it is
	// looked up in the environment, e.g. VERSIONIFY_JIRA_PASSWORD.
	EnvPrefix = "VERSIONIFY"

	// DotEnvFilename is loaded into the environment before the configuration
	// is read. Variables that are already set are not overwritten.
	DotEnvFilename = ".env"

	// DefaultHTTPTimeout is used for every outbound request
	// unless http.timeout is set.
	DefaultHTTPTimeout = 30 * time.Second
)

var (
	mu       sync.Mutex
	store    *viper.Viper
	filePath string
)

// SetConfigFile makes Load read the given file instead of looking up
// the default configuration file in the working directory.
func SetConfigFile(path string) {
	mu.Lock()
	filePath = path
	mu.Unlock()
}

// Load reads the .env file, the configuration file and binds the environment.
// Only the first call has any effect.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	if store != nil {
		return nil
	}

	task := "Load the .env file"
	if err := godotenv.Load(DotEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewError(task, err)
	}

	v := newViper()
	if filePath != "" {
		v.SetConfigFile(filePath)
	} else {
		v.SetConfigName(ConfigFilename)
		v.AddConfigPath(".")
	}

	task = "Read the configuration file"
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filePath != "" || !errors.As(err, &notFound) {
			return errs.NewErrorWithHint(task, err,
				"Make sure the configuration file exists and is valid YAML\n")
		}
	}

	store = v
	return nil
}

// LoadFromBytes replaces the current configuration with the given YAML.
// The environment is still consulted for overrides.
func LoadFromBytes(content []byte) error {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return errs.NewErrorWithHint("Parse the configuration", err,
			"Make sure the configuration is valid YAML\n")
	}

	mu.Lock()
	store = v
	mu.Unlock()
	return nil
}

// Reset drops the loaded configuration.
func Reset() {
	mu.Lock()
	store = nil
	filePath = ""
	mu.Unlock()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	return v
}

func current() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	if store == nil {
		store = newViper()
	}
	return store
}

// Key-value lookup ------------------------------------------------------------

func IsSet(key string) bool {
	return current().IsSet(key)
}

func GetString(key string) string {
	return strings.TrimSpace(current().GetString(key))
}

func GetStringMapString(key string) map[string]string {
	return current().GetStringMapString(key)
}

// SectionSet returns true when at least one of the given keys
// is set within the given section.
func SectionSet(section string, keys ...string) bool {
	for _, key := range keys {
		if IsSet(section + "." + key) {
			return true
		}
	}
	return false
}

// RequireString returns the value for the given key
// or *ErrKeyNotSet when the value is empty.
func RequireString(key string) (string, error) {
	value := GetString(key)
	if value == "" {
		return "", &ErrKeyNotSet{key}
	}
	return value, nil
}

// AskSecret obtains a secret that is missing in the configuration.
// It is only set when running in a terminal.
var AskSecret func(key string) (string, error)

// RequireSecret is like RequireString, but it falls back to AskSecret
// when the value is not set.
func RequireSecret(key string) (string, error) {
	value := GetString(key)
	if value != "" {
		return value, nil
	}
	if AskSecret == nil {
		return "", &ErrKeyNotSet{key}
	}
	value, err := AskSecret(key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", &ErrKeyNotSet{key}
	}
	return value, nil
}

// HTTPTimeout returns the timeout to be used for every outbound request.
func HTTPTimeout() (time.Duration, error) {
	v := current()
	timeout := v.GetDuration("http.timeout")
	if timeout <= 0 {
		return 0, &ErrKeyInvalid{"http.timeout", v.Get("http.timeout")}
	}
	return timeout, nil
}
