package json

import (
	"encoding/json"
	"io"

	"github.com/a11ykit/achecker-client/internal/render/core"
)

// WriteReport writes a single entry as the bare report object and several
// entries as an array that also carries each URI.
func WriteReport(w io.Writer, entries []core.Entry) error {
	var v any = entries
	if len(entries) == 1 {
		v = entries[0].Report
	}

	raw, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}

	_, err = w.Write(append(raw, '\n'))
	return err
}
