package podio_test

import (
	// podio package
	. "github.com/salsaflow/versionify/modules/podio"

	// Stdlib
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/modules/common"
	"github.com/salsaflow/versionify/modules/podio/client"
)

var _ = Describe("the Podio publisher", func() {

	var (
		server    *httptest.Server
		requests  []string
		bodies    []string
		publisher *Publisher
	)

	BeforeEach(func() {
		requests = nil
		bodies = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			requests = append(requests, r.Method+" "+r.URL.Path)
			bodies = append(bodies, string(body))

			switch r.Method + " " + r.URL.Path {
			case "POST /status/space/77/":
				io.WriteString(w, `{"status_id": 1234, "value": "Released 2.1"}`)
			case "POST /comment/status/1234/":
				io.WriteString(w, `{"comment_id": 99}`)
			case "DELETE /status/1234":
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusForbidden)
				io.WriteString(w, `{"error": "forbidden", "error_description": "no access"}`)
			}
		}))

		baseURL, _ := url.Parse(server.URL + "/")
		publisher = NewPublisherWithClient(client.New(baseURL, server.Client()), "77")
	})

	AfterEach(func() {
		server.Close()
	})

	It("should implement the withdrawing publisher", func() {
		var p common.Publisher = publisher
		_, ok := p.(common.Withdrawer)
		Expect(ok).To(BeTrue())
	})

	It("should return the status ID as the handle", func() {
		handle, err := publisher.Publish("Released 2.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(handle).To(Equal("1234"))
		Expect(bodies[0]).To(MatchJSON(`{"value": "Released 2.1"}`))
	})

	It("should comment on the status identified by the handle", func() {
		Expect(publisher.Comment("1234", "Hotfix deployed")).To(Succeed())
		Expect(requests).To(Equal([]string{"POST /comment/status/1234/"}))
		Expect(bodies[0]).To(MatchJSON(`{"value": "Hotfix deployed"}`))
	})

	It("should delete the status when withdrawing", func() {
		Expect(publisher.Withdraw("1234")).To(Succeed())
		Expect(requests).To(Equal([]string{"DELETE /status/1234"}))
	})

	It("should return the Podio error", func() {
		err := publisher.Comment("5", "nope")
		var apiErr *client.ErrAPI
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Err.Code).To(Equal("forbidden"))
	})
})

var _ = Describe("the Podio configuration", func() {

	AfterEach(func() {
		config.Reset()
	})

	It("should be disabled when the section is missing", func() {
		Expect(config.LoadFromBytes([]byte("slack:\n  channel: '#dev'\n"))).To(Succeed())
		Expect(IsConfigured()).To(BeFalse())
	})

	It("should reject a partial section", func() {
		Expect(config.LoadFromBytes([]byte("podio:\n  api_key: key\n"))).To(Succeed())
		Expect(IsConfigured()).To(BeTrue())

		_, err := LoadConfig()
		var keyErr *config.ErrKeyNotSet
		Expect(errors.As(err, &keyErr)).To(BeTrue())
		Expect(keyErr.Key).To(Equal("podio.api_secret"))
	})

	It("should load a complete section", func() {
		Expect(config.LoadFromBytes([]byte(`
podio:
  api_key: key
  api_secret: secret
  username: bot@example.com
  password: pass
  space_id: 77
`))).To(Succeed())

		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SpaceId).To(Equal("77"))
	})

	It("should ask for the password when it is not configured", func() {
		Expect(config.LoadFromBytes([]byte(`
podio:
  api_key: key
  api_secret: secret
  username: bot@example.com
  space_id: 77
`))).To(Succeed())

		config.AskSecret = func(key string) (string, error) {
			Expect(key).To(Equal("podio.password"))
			return "typed", nil
		}
		defer func() { config.AskSecret = nil }()

		cfg, err := LoadConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Password).To(Equal("typed"))
	})
})
