package notes

import (
	// Stdlib
	"bytes"
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("html release notes").Parse(`
<h2>Release Notes</h2>

<p>Issues fixed in version {{.Version}}, grouped by issue type.</p>
{{range .Sections}}
<h3>{{.IssueType}}</h3>
<ul>{{range .Issues}}
  <li><a href="{{.URL}}">{{.Key}}</a> - {{.Summary}}</li>{{end}}
</ul>
{{end}}
`))

type htmlEncoder struct {
	writer io.Writer
}

func newHtmlEncoder(writer io.Writer) Encoder {
	return &htmlEncoder{writer}
}

func (encoder *htmlEncoder) Encode(nts *ReleaseNotes, opts *EncodeOptions) error {
	notes := toInternalRepresentation(nts)

	var output bytes.Buffer
	if err := htmlTemplate.Execute(&output, notes); err != nil {
		return err
	}

	_, err := io.Copy(encoder.writer, &output)
	return err
}
