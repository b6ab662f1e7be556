package jira

import (
	// Stdlib
	"net/url"
	"strings"
	"time"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
)

const Id = "jira"

// Config is the validated JIRA configuration.
type Config interface {
	ServerURL() *url.URL
	Username() string
	Password() string
	ProjectId() string
	Transitions() map[string]string
	ReleasableStatusId() string
	FinalStatusId() string
	Timeout() time.Duration
}

var configCache Config

// LoadConfig reads and validates the jira section of the configuration.
// The result is cached, so it is fine to call LoadConfig repeatedly.
func LoadConfig() (Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	proxy, err := loadConfig()
	if err != nil {
		return nil, errs.NewError("Load the JIRA configuration", err)
	}

	configCache = proxy
	return configCache, nil
}

func loadConfig() (*configProxy, error) {
	var (
		proxy configProxy
		err   error
	)

	// Required string keys.
	for key, dst := range map[string]*string{
		Id + ".username":          &proxy.username,
		Id + ".project_id":        &proxy.projectId,
		Id + ".releasable_status": &proxy.releasableStatusId,
		Id + ".final_status":      &proxy.finalStatusId,
	} {
		if *dst, err = config.RequireString(key); err != nil {
			return nil, err
		}
	}

	// The password may be entered interactively.
	if proxy.password, err = config.RequireSecret(Id + ".password"); err != nil {
		return nil, err
	}

	// The server URL must be absolute.
	raw, err := config.RequireString(Id + ".server_url")
	if err != nil {
		return nil, err
	}
	serverURL, err := url.Parse(raw)
	if err != nil || serverURL.Scheme == "" || serverURL.Host == "" {
		return nil, &config.ErrKeyInvalid{Key: Id + ".server_url", Value: raw}
	}
	if !strings.HasSuffix(serverURL.Path, "/") {
		serverURL.Path += "/"
	}
	proxy.serverURL = serverURL

	// The transition map must not contain empty entries.
	transitions := config.GetStringMapString(Id + ".transitions")
	if len(transitions) == 0 {
		return nil, &config.ErrKeyNotSet{Key: Id + ".transitions"}
	}
	for statusId, transitionId := range transitions {
		if statusId == "" || transitionId == "" {
			return nil, &config.ErrKeyInvalid{Key: Id + ".transitions", Value: transitions}
		}
	}
	proxy.transitions = transitions

	if proxy.timeout, err = config.HTTPTimeout(); err != nil {
		return nil, err
	}

	return &proxy, nil
}

type configProxy struct {
	serverURL          *url.URL
	username           string
	password           string
	projectId          string
	transitions        map[string]string
	releasableStatusId string
	finalStatusId      string
	timeout            time.Duration
}

func (proxy *configProxy) ServerURL() *url.URL {
	return proxy.serverURL
}

func (proxy *configProxy) Username() string {
	return proxy.username
}

func (proxy *configProxy) Password() string {
	return proxy.password
}

func (proxy *configProxy) ProjectId() string {
	return proxy.projectId
}

func (proxy *configProxy) Transitions() map[string]string {
	return proxy.transitions
}

func (proxy *configProxy) ReleasableStatusId() string {
	return proxy.releasableStatusId
}

func (proxy *configProxy) FinalStatusId() string {
	return proxy.finalStatusId
}

func (proxy *configProxy) Timeout() time.Duration {
	return proxy.timeout
}
