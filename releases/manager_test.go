package releases_test

import (
	// releases package
	. "github.com/salsaflow/versionify/releases"

	// Stdlib
	"errors"
	"net/url"
	"time"

	// Internal
	"github.com/salsaflow/versionify/announce"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// Workflow used in the tests:
//
//	Open (1) --11--> In Progress (2) --21--> Resolved (3) --31--> Released (4)
const (
	statusOpen       = "1"
	statusInProgress = "2"
	statusResolved   = "3"
	statusReleased   = "4"
)

var transitions = TransitionMap{
	statusOpen:       "11",
	statusInProgress: "21",
	statusResolved:   "31",
}

// publisher records published posts and comments.
type publisher struct {
	published []string
	comments  []string
}

func (p *publisher) ServiceName() string { return "Fake" }

func (p *publisher) Publish(body string) (string, error) {
	p.published = append(p.published, body)
	return "42", nil
}

func (p *publisher) Comment(handle, body string) error {
	p.comments = append(p.comments, body)
	return nil
}

var _ = Describe("the release manager", func() {

	var (
		tracker *fakeTracker
		status  *publisher
		chat    *publisher
		manager *Manager
	)

	BeforeEach(func() {
		tracker = newFakeTracker()
		tracker.workflow["11"] = &client.IssueStatus{Id: statusInProgress}
		tracker.workflow["21"] = &client.IssueStatus{Id: statusResolved}
		tracker.workflow["31"] = &client.IssueStatus{Id: statusReleased}

		status = &publisher{}
		chat = &publisher{}

		serverURL, _ := url.Parse("https://jira.example.com")
		urls, err := NewURLGenerator(serverURL, tracker.project)
		Expect(err).NotTo(HaveOccurred())

		manager, err = NewManager(tracker, &Options{
			URLs:               urls,
			Transitions:        transitions,
			ReleasableStatusId: statusReleased,
			FinalStatusId:      statusResolved,
			Channels: []*announce.Channel{
				{Name: "podio", Publisher: status, LinkKind: announce.LinkKindPodioStatus},
				{Name: "slack", Publisher: chat},
			},
			Now: func() time.Time {
				return time.Date(2026, time.October, 17, 23, 30, 0, 0, time.UTC)
			},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Context("creating a version", func() {

		It("should create the version and fetch it again", func() {
			version, err := manager.CreateVersion("2.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Id).To(Equal("10200"))
			Expect(version.Name).To(Equal("2.1"))
			Expect(tracker.calls).To(Equal([]string{
				"ListVersions",
				"CreateVersion 2.1",
				"GetVersion 10200",
			}))
		})

		It("should refuse a duplicate name before writing anything", func() {
			tracker.versions = []*client.Version{{Id: "10200", Name: "2.1"}}

			_, err := manager.CreateVersion("2.1")
			Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&ErrVersionExists{}))
			Expect(tracker.callsOf("CreateVersion")).To(BeEmpty())
			Expect(tracker.versions).To(HaveLen(1))
		})

		It("should compare the names exactly", func() {
			tracker.versions = []*client.Version{{Id: "10200", Name: "v2.1"}}

			_, err := manager.CreateVersion("V2.1")
			Expect(err).NotTo(HaveOccurred())
			Expect(tracker.versions).To(HaveLen(2))
		})

		It("should refuse an empty name", func() {
			_, err := manager.CreateVersion("")
			Expect(errs.RootCause(err)).To(Equal(ErrEmptyVersionName))
			Expect(tracker.calls).To(BeEmpty())
		})
	})

	Context("getting the open version", func() {

		It("should return the first unreleased version in the tracker order", func() {
			tracker.versions = []*client.Version{
				{Id: "1", Name: "1.0", Released: true},
				{Id: "2", Name: "A"},
				{Id: "3", Name: "B"},
			}

			version, err := manager.OpenVersion()
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Name).To(Equal("A"))
		})

		It("should return nil when all versions are released", func() {
			tracker.versions = []*client.Version{{Id: "1", Name: "1.0", Released: true}}

			version, err := manager.OpenVersion()
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(BeNil())
		})
	})

	Context("resolving a version", func() {

		BeforeEach(func() {
			tracker.versions = []*client.Version{
				{Id: "1", Name: "1.0", Released: true},
				{Id: "2", Name: "2.0"},
			}
		})

		It("should find the version by name", func() {
			version, err := manager.ResolveVersion("1.0")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Id).To(Equal("1"))
		})

		It("should fall back to the open version", func() {
			version, err := manager.ResolveVersion("")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Id).To(Equal("2"))
		})

		It("should report a missing version", func() {
			_, err := manager.ResolveVersion("3.0")
			Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&ErrVersionNotFound{}))

			tracker.versions[1].Released = true
			_, err = manager.ResolveVersion("")
			Expect(errs.RootCause(err)).To(Equal(ErrNoVersion))
		})
	})

	Context("rendering the changelog", func() {

		It("should render one line per issue in the tracker order", func() {
			first := &client.Issue{Key: "PROJ-1"}
			first.Fields.Summary = "Fix login"
			second := &client.Issue{Key: "PROJ-2"}
			second.Fields.Summary = "Add export"
			tracker.searchResult = []*client.Issue{first, second}

			changelog, err := manager.Changelog(&client.Version{Id: "10200", Name: "2.1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(changelog).To(Equal(
				"- [PROJ-1](https://jira.example.com/browse/PROJ-1) - Fix login\n" +
					"- [PROJ-2](https://jira.example.com/browse/PROJ-2) - Add export\n"))
			Expect(tracker.callsOf("SearchIssues")).To(Equal([]string{
				`SearchIssues project = PROJ AND fixVersion = "2.1"`,
			}))
		})

		It("should render an empty body for a version with no issues", func() {
			changelog, err := manager.Changelog(&client.Version{Id: "10200", Name: "2.1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(changelog).To(Equal(""))
		})

		It("should return the no-version sentinel without querying the tracker", func() {
			_, err := manager.Changelog(nil)
			Expect(err).To(Equal(ErrNoVersion))
			Expect(tracker.calls).To(BeEmpty())
		})

		It("should list the changes with their issue type", func() {
			bug := &client.Issue{Key: "PROJ-3"}
			bug.Fields.Summary = "Fix crash"
			bug.Fields.IssueType.Name = "Bug"
			tracker.searchResult = []*client.Issue{bug}

			changes, err := manager.Changes(&client.Version{Id: "10200", Name: "2.1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(changes).To(Equal([]*Change{{
				Key:     "PROJ-3",
				Summary: "Fix crash",
				URL:     "https://jira.example.com/browse/PROJ-3",
				Type:    "Bug",
			}}))
		})
	})

	Context("assigning an issue", func() {

		var version *client.Version

		BeforeEach(func() {
			version = &client.Version{Id: "10201", Name: "2.0"}
			tracker.versions = []*client.Version{version}
		})

		It("should refuse an issue assigned to another version", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen, "1.0")

			result, err := manager.AssignToVersion(issue, version)
			Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&ErrVersionConflict{}))
			Expect(result).To(Equal(issue))
			Expect(result.Fields.FixVersions).To(HaveLen(1))
			Expect(result.Fields.FixVersions[0].Name).To(Equal("1.0"))
			Expect(tracker.callsOf("SetFixVersion")).To(BeEmpty())
		})

		It("should set the version and move the issue to the final status", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen)

			result, err := manager.AssignToVersion(issue, version)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fields.FixVersions[0].Name).To(Equal("2.0"))
			Expect(result.Fields.Status.Id).To(Equal(statusResolved))
			Expect(tracker.callsOf("PerformTransition")).To(Equal([]string{
				"PerformTransition PROJ-1 11",
				"PerformTransition PROJ-1 21",
			}))
		})

		It("should accept an issue already assigned to the version", func() {
			issue := tracker.addIssue("PROJ-1", statusResolved, "2.0")

			result, err := manager.AssignToVersion(issue, version)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fields.Status.Id).To(Equal(statusResolved))
			Expect(tracker.callsOf("SetFixVersion")).To(HaveLen(1))
		})

		It("should return the unmodified issue when saving fails", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen)
			tracker.failOn["SetFixVersion PROJ-1 10201"] = errors.New("HTTP 500")

			result, err := manager.AssignToVersion(issue, version)
			Expect(err).To(HaveOccurred())
			Expect(result).To(Equal(issue))
			Expect(tracker.callsOf("PerformTransition")).To(BeEmpty())
		})
	})

	Context("moving an issue through the workflow", func() {

		It("should stop at the target status", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen)

			result, err := manager.TransitionTo(issue, statusInProgress)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fields.Status.Id).To(Equal(statusInProgress))
			Expect(tracker.callsOf("PerformTransition")).To(HaveLen(1))
		})

		It("should not touch an issue already in the target status", func() {
			issue := tracker.addIssue("PROJ-1", statusReleased)

			result, err := manager.TransitionTo(issue, statusReleased)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(issue))
			Expect(tracker.calls).To(BeEmpty())
		})

		It("should stop where no transition is defined", func() {
			issue := tracker.addIssue("PROJ-1", "99")

			result, err := manager.TransitionTo(issue, statusReleased)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Fields.Status.Id).To(Equal("99"))
			Expect(tracker.calls).To(BeEmpty())
		})

		It("should terminate within the number of mapped statuses", func() {
			for _, start := range []string{statusOpen, statusInProgress, statusResolved, statusReleased} {
				tracker.calls = nil
				issue := tracker.addIssue("PROJ-1", start)

				result, err := manager.TransitionTo(issue, statusReleased)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Fields.Status.Id).To(Equal(statusReleased))
				Expect(len(tracker.callsOf("PerformTransition"))).To(
					BeNumerically("<=", len(transitions)))
			}
		})

		It("should fetch the issue again after every transition", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen)

			_, err := manager.TransitionTo(issue, statusResolved)
			Expect(err).NotTo(HaveOccurred())
			Expect(tracker.calls).To(Equal([]string{
				"PerformTransition PROJ-1 11",
				"GetIssue PROJ-1",
				"PerformTransition PROJ-1 21",
				"GetIssue PROJ-1",
			}))
		})

		It("should abort the walk when a transition fails", func() {
			issue := tracker.addIssue("PROJ-1", statusOpen)
			tracker.failOn["PerformTransition PROJ-1 21"] = errors.New("HTTP 400")

			result, err := manager.TransitionTo(issue, statusReleased)
			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
			Expect(tracker.issues["PROJ-1"].Fields.Status.Id).To(Equal(statusInProgress))
		})

		It("should detect a transition cycle", func() {
			tracker.workflow["21"] = &client.IssueStatus{Id: statusOpen}
			issue := tracker.addIssue("PROJ-1", statusOpen)

			result, err := manager.TransitionTo(issue, statusReleased)
			Expect(result).To(BeNil())
			Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&ErrTransitionCycle{}))
			Expect(tracker.callsOf("PerformTransition")).To(HaveLen(2))
		})
	})

	Context("releasing a version", func() {

		var version *client.Version

		BeforeEach(func() {
			version = &client.Version{Id: "10200", Name: "2.1"}
		})

		It("should move the issues and mark the version released today", func() {
			tracker.searchResult = []*client.Issue{
				tracker.addIssue("PROJ-1", statusResolved),
				tracker.addIssue("PROJ-2", statusInProgress),
			}

			Expect(manager.ReleaseVersion(version)).To(Succeed())
			Expect(tracker.issues["PROJ-1"].Fields.Status.Id).To(Equal(statusReleased))
			Expect(tracker.issues["PROJ-2"].Fields.Status.Id).To(Equal(statusReleased))
			Expect(tracker.callsOf("ReleaseVersion")).To(Equal([]string{
				"ReleaseVersion 10200 2026-10-17",
			}))
		})

		It("should keep going when an issue cannot be moved", func() {
			tracker.searchResult = []*client.Issue{
				tracker.addIssue("PROJ-1", statusResolved),
				tracker.addIssue("PROJ-2", statusResolved),
			}
			tracker.failOn["PerformTransition PROJ-1 31"] = errors.New("HTTP 400")

			Expect(manager.ReleaseVersion(version)).NotTo(Succeed())
			Expect(tracker.issues["PROJ-2"].Fields.Status.Id).To(Equal(statusReleased))
			Expect(tracker.callsOf("ReleaseVersion")).To(HaveLen(1))
		})
	})

	Context("announcing a release", func() {

		var version *client.Version

		BeforeEach(func() {
			version = &client.Version{Id: "10200", Name: "2.1"}
		})

		It("should publish a status post only once", func() {
			Expect(manager.Announce("Released 2.1", version, false)).To(Succeed())
			Expect(manager.Announce("Released 2.1", version, false)).To(Succeed())

			Expect(status.published).To(HaveLen(1))
			Expect(status.comments).To(BeEmpty())
			Expect(chat.published).To(HaveLen(2))
		})

		It("should comment on the existing status post", func() {
			Expect(manager.Announce("Released 2.1", version, false)).To(Succeed())
			Expect(manager.Announce("Hotfix deployed", version, true)).To(Succeed())

			Expect(status.published).To(Equal([]string{"Released 2.1"}))
			Expect(status.comments).To(Equal([]string{"Hotfix deployed"}))
		})

		It("should require a version", func() {
			err := manager.Announce("Released", nil, false)
			Expect(errs.RootCause(err)).To(Equal(ErrNoVersion))
		})
	})
})
