package notes

import (
	// Stdlib
	"bytes"
	"io"
	"text/template"
)

var markdownTemplate = template.Must(template.New("markdown release notes").Parse(`
## Release {{.Version}} ##
{{range .Sections}}
### {{.IssueType}} ###
{{range .Issues}}
- [{{.Key}}]({{.URL}}) - {{.Summary}}{{end}}
{{end}}
`))

type markdownEncoder struct {
	writer io.Writer
}

func newMarkdownEncoder(writer io.Writer) Encoder {
	return &markdownEncoder{writer}
}

func (encoder *markdownEncoder) Encode(nts *ReleaseNotes, opts *EncodeOptions) error {
	notes := toInternalRepresentation(nts)

	var output bytes.Buffer
	if err := markdownTemplate.Execute(&output, notes); err != nil {
		return err
	}

	_, err := io.Copy(encoder.writer, &output)
	return err
}
