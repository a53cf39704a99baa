package media

import (
	"bytes"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/clipdeck/internal/filesystem"
	"github.com/jakoblorz/clipdeck/internal/timecode"
	"github.com/pkg/errors"
)

// DefaultReportTemplate renders one probed file for `clipdeck probe`
const DefaultReportTemplate = `{{ .Name }}
  path:      {{ .Path }}
  type:      {{ .Type }}
  duration:  {{ clock .Duration }}
{{- if .IsVideo }}
  video:     {{ .VideoCodec | default "unknown" }} {{ .Width }}x{{ .Height }}
{{- end }}
  audio:     {{ .AudioCodec | default "none" }}
  size:      {{ bytes .Size }}
`

func reportFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["clock"] = func(d time.Duration) string {
		return timecode.FormatClock(d)
	}
	funcs["mmss"] = func(d time.Duration) string {
		return timecode.FormatDuration(d)
	}
	funcs["bytes"] = func(n int64) string {
		if n <= 0 {
			return "unknown"
		}
		return humanize.Bytes(uint64(n))
	}
	return funcs
}

// NewReportTemplate parses text with the report helpers available
func NewReportTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(reportFuncs()).Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid report template %s", name)
	}
	return tmpl, nil
}

// LoadReportTemplate reads and parses a report template file
func LoadReportTemplate(fs filesystem.FileSystem, path string) (*template.Template, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read template %s", path)
	}
	return NewReportTemplate(path, string(data))
}

// RenderReport executes tmpl for md. A nil tmpl uses DefaultReportTemplate.
func RenderReport(tmpl *template.Template, md *Metadata) (string, error) {
	if tmpl == nil {
		var err error
		tmpl, err = NewReportTemplate("default", DefaultReportTemplate)
		if err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, md); err != nil {
		return "", errors.Wrap(err, "failed to render report")
	}
	return buf.String(), nil
}
