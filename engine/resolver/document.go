package resolver

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Document is the parsed configuration document, keyed by environment name.
// It is read-only input: nothing in this package mutates it.
type Document map[string]Section

// Section is the environment-scoped part of the document.
type Section struct {
	Services map[string]ServiceEntry `yaml:"services"`
	Networks map[string]NetworkEntry `yaml:"networks"`
	Settings map[string]string       `yaml:"settings"`
}

// Section returns the sub-document for the given environment. Missing
// environments resolve to an empty section, never an error.
func (d Document) Section(env Environment) Section {
	return d[env.String()]
}

// ServiceEntry carries the raw host/port scalars declared for one service.
// Pointers distinguish "absent" from "declared empty".
type ServiceEntry struct {
	Host *Scalar `yaml:"host"`
	Port *Scalar `yaml:"port"`
}

// Scalar keeps a YAML scalar in its string form so that a numeric port and
// the same port quoted as a string serialize identically.
type Scalar string

func (s *Scalar) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Scalar(scalarString(v))
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

func scalarString(v any) string {
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", v)
}

// NetworkEntry is the variant a network declaration decodes into: either a
// plain URL string or a mapping carrying a url field. Anything else decodes
// to an empty entry that contributes nothing downstream.
type NetworkEntry struct {
	url string
	ok  bool
}

// StringURL builds the plain-string form of a network entry.
func StringURL(url string) NetworkEntry {
	return NetworkEntry{url: url, ok: true}
}

// URL returns the raw URL template and whether the entry carried one.
func (e NetworkEntry) URL() (string, bool) {
	return e.url, e.ok
}

func (e *NetworkEntry) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		// Malformed entries are skipped, not fatal: one bad network must
		// not block resolution of the others.
		return nil
	}
	switch t := v.(type) {
	case string:
		e.url, e.ok = t, true
	case map[string]any:
		if raw, found := t["url"]; found && raw != nil {
			if _, nested := raw.(map[string]any); !nested {
				e.url, e.ok = scalarString(raw), true
			}
		}
	}
	return nil
}
