package messages

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParamSeparator splits a raw message identifier into its key and parameters.
const ParamSeparator = "|"

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog holds the ignore set and the message table. It is immutable once
// built and safe for concurrent use.
type Catalog struct {
	ignore   map[string]struct{}
	messages map[string]string
}

type catalogFile struct {
	Ignore   []string          `yaml:"ignore"`
	Messages map[string]string `yaml:"messages"`
}

// New copies ignore and messages into a new Catalog.
func New(ignore []string, messages map[string]string) *Catalog {
	c := &Catalog{
		ignore:   make(map[string]struct{}, len(ignore)),
		messages: make(map[string]string, len(messages)),
	}
	for _, m := range ignore {
		c.ignore[m] = struct{}{}
	}
	for k, v := range messages {
		c.messages[strings.TrimSpace(k)] = v
	}
	return c
}

// Parse builds a Catalog from its YAML form.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode message catalog: %w", err)
	}
	return New(f.Ignore, f.Messages), nil
}

func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	return Parse(b)
}

// Default returns the catalog shipped with the module.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("embedded message catalog: " + err.Error())
	}
	return c
}

// Resolve maps a raw identifier to its human-readable text. Identifiers of the
// form "key|p1|p2" have their parameters substituted into {1}, {2}, ...
// Unknown keys resolve to raw unchanged.
func (c *Catalog) Resolve(raw string) string {
	if c == nil {
		return raw
	}

	parts := strings.Split(raw, ParamSeparator)
	tmpl, ok := c.messages[strings.TrimSpace(parts[0])]
	if !ok {
		return raw
	}

	params := parts[1:]
	if len(params) == 0 {
		return tmpl
	}

	pairs := make([]string, 0, 2*len(params))
	for i, p := range params {
		pairs = append(pairs, "{"+strconv.Itoa(i+1)+"}", strings.TrimSpace(p))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Ignored reports whether a resolved message is in the ignore set.
func (c *Catalog) Ignored(resolved string) bool {
	if c == nil {
		return false
	}
	_, ok := c.ignore[resolved]
	return ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.messages)
}
