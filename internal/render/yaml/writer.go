package yaml

import (
	"io"

	"github.com/a11ykit/achecker-client/internal/render/core"
	"gopkg.in/yaml.v3"
)

// WriteReport write a report in yaml format to the output writer
func WriteReport(w io.Writer, entries []core.Entry) error {
	raw, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
