package render

import (
	"fmt"
	"io"

	"github.com/a11ykit/achecker-client/internal/render/core"
	"github.com/a11ykit/achecker-client/internal/render/json"
	"github.com/a11ykit/achecker-client/internal/render/junit"
	"github.com/a11ykit/achecker-client/internal/render/text"
	"github.com/a11ykit/achecker-client/internal/render/yaml"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "junit-xml"}

// CreateReport writes entries to w in the given format. The formats currently
// accepted are: json, yaml, junit-xml and text.
func CreateReport(w io.Writer, format string, enableColor bool, entries []core.Entry) error {
	switch format {
	case "json":
		return json.WriteReport(w, entries)
	case "yaml":
		return yaml.WriteReport(w, entries)
	case "junit-xml":
		return junit.WriteReport(w, entries)
	case "text", "":
		return text.WriteReport(w, entries, enableColor)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
