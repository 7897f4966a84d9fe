// Package i18n resolves UI copy from a key→template table.
//
// Templates may reference other keys with $t(some.key) and substitute
// variables with {{name}}. The English table is embedded at build time.
package i18n

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxDepth bounds $t() expansion so reference cycles terminate.
const maxDepth = 8

//go:embed en.yaml
var enYAML []byte

var (
	refPattern = regexp.MustCompile(`\$t\(([A-Za-z0-9_.]+)\)`)
	varPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)
)

// Vars holds interpolation values keyed by variable name.
type Vars map[string]any

// Catalog is an immutable set of templates keyed by dotted path.
type Catalog struct {
	templates map[string]string
}

// Parse builds a catalog from a YAML document of nested maps. Leaves become
// templates keyed by their dotted path, e.g. errors.required.
func Parse(data []byte) (*Catalog, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{templates: make(map[string]string)}
	if err := flatten("", tree, c.templates); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		switch v := v.(type) {
		case map[string]any:
			if err := flatten(path, v, out); err != nil {
				return err
			}
		case string:
			out[path] = v
		case nil:
			out[path] = ""
		case []any:
			return fmt.Errorf("key %s: lists are not supported", path)
		default:
			out[path] = fmt.Sprint(v)
		}
	}
	return nil
}

// Has reports whether key exists.
func (c *Catalog) Has(key string) bool {
	_, ok := c.templates[key]
	return ok
}

// Keys returns every key in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.templates))
	for k := range c.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// T resolves key with vars. A missing key resolves to the key itself so
// gaps in the table show up on screen instead of as blank text. Unknown
// variables are left in place.
func (c *Catalog) T(key string, vars Vars) string {
	return c.resolve(key, vars, 0)
}

func (c *Catalog) resolve(key string, vars Vars, depth int) string {
	tmpl, ok := c.templates[key]
	if !ok {
		return key
	}

	if depth < maxDepth {
		tmpl = refPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
			ref := refPattern.FindStringSubmatch(m)[1]
			return c.resolve(ref, vars, depth+1)
		})
	}

	if len(vars) == 0 || !strings.Contains(tmpl, "{{") {
		return tmpl
	}

	return varPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := varPattern.FindStringSubmatch(m)[1]
		v, ok := vars[name]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}

var english = mustParse(enYAML)

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic("i18n: embedded catalog: " + err.Error())
	}
	return c
}

// English returns the embedded English catalog.
func English() *Catalog {
	return english
}

// T resolves key against the English catalog.
func T(key string, vars ...Vars) string {
	var v Vars
	if len(vars) > 0 {
		v = vars[0]
	}
	return english.T(key, v)
}
