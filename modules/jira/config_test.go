package jira

import (
	// Stdlib
	"time"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
)

const validConfig = `
jira:
  server_url: https://jira.example.com/tracker
  username: deploy
  password: secret
  project_id: PROJ
  transitions:
    "10000": "11"
    "10001": "21"
  releasable_status: "10002"
  final_status: "10003"
`

var _ = Describe("loading the JIRA configuration", func() {

	AfterEach(func() {
		configCache = nil
		config.Reset()
	})

	It("should return the validated values", func() {
		Expect(config.LoadFromBytes([]byte(validConfig))).To(Succeed())

		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.ServerURL().String()).To(Equal("https://jira.example.com/tracker/"))
		Expect(cfg.ProjectId()).To(Equal("PROJ"))
		Expect(cfg.Transitions()).To(Equal(map[string]string{"10000": "11", "10001": "21"}))
		Expect(cfg.ReleasableStatusId()).To(Equal("10002"))
		Expect(cfg.FinalStatusId()).To(Equal("10003"))
		Expect(cfg.Timeout()).To(Equal(30 * time.Second))
	})

	It("should reject a missing key", func() {
		Expect(config.LoadFromBytes([]byte(`
jira:
  server_url: https://jira.example.com
`))).To(Succeed())

		_, err := LoadConfig()
		Expect(err).To(HaveOccurred())
		Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&config.ErrKeyNotSet{}))
	})

	It("should reject a relative server URL", func() {
		Expect(config.LoadFromBytes([]byte(`
jira:
  server_url: jira.example.com
  username: deploy
  password: secret
  project_id: PROJ
  transitions:
    "10000": "11"
  releasable_status: "10002"
  final_status: "10003"
`))).To(Succeed())

		_, err := LoadConfig()
		Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&config.ErrKeyInvalid{}))
	})

	It("should ask for the password when it is not configured", func() {
		Expect(config.LoadFromBytes([]byte(`
jira:
  server_url: https://jira.example.com
  username: deploy
  project_id: PROJ
  transitions:
    "10000": "11"
  releasable_status: "10002"
  final_status: "10003"
`))).To(Succeed())

		var asked []string
		config.AskSecret = func(key string) (string, error) {
			asked = append(asked, key)
			return "typed", nil
		}
		defer func() { config.AskSecret = nil }()

		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Password()).To(Equal("typed"))
		Expect(asked).To(Equal([]string{"jira.password"}))
	})
})
