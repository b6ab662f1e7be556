package notes

import (
	// Stdlib
	"sort"
)

const otherIssueType = "Other"

// The following types are annotated for the encoders.
// Changes are grouped into sections by issue type.

type releaseNotes struct {
	Version  string                 `json:"version"  yaml:"version"`
	Sections []*releaseNotesSection `json:"sections" yaml:"sections"`
}

type releaseNotesSection struct {
	IssueType string   `json:"issue_type" yaml:"issue_type"`
	Issues    []*issue `json:"issues"     yaml:"issues"`
}

type issue struct {
	Key     string `json:"key"     yaml:"key"`
	Summary string `json:"summary" yaml:"summary"`
	URL     string `json:"url"     yaml:"url"`
}

// toInternalRepresentation groups the changes by issue type.
// Sections are sorted alphabetically, issues keep the tracker order.
func toInternalRepresentation(notes *ReleaseNotes) *releaseNotes {
	sectionMap := make(map[string]*releaseNotesSection)
	for _, change := range notes.Changes {
		issueType := change.Type
		if issueType == "" {
			issueType = otherIssueType
		}

		section, ok := sectionMap[issueType]
		if !ok {
			section = &releaseNotesSection{IssueType: issueType}
			sectionMap[issueType] = section
		}
		section.Issues = append(section.Issues, &issue{
			Key:     change.Key,
			Summary: change.Summary,
			URL:     change.URL,
		})
	}

	sections := make([]*releaseNotesSection, 0, len(sectionMap))
	for _, section := range sectionMap {
		sections = append(sections, section)
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].IssueType < sections[j].IssueType
	})

	return &releaseNotes{
		Version:  notes.Version,
		Sections: sections,
	}
}
