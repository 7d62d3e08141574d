package resolver

import "sort"

// KeyStatus classifies one environment variable.
type KeyStatus struct {
	Name     string
	Present  bool
	Required bool
}

// Report is the result of validating the snapshot against the document's
// requirements. Keys are ordered lexicographically, required before
// optional, for deterministic output.
type Report struct {
	Keys            []KeyStatus
	MissingRequired []string
	MissingOptional []string
}

// Validate classifies every required key (fixed baseline plus discovered
// placeholders) and every fixed optional key against the snapshot. A key is
// present only when its value is non-empty.
func Validate(env Environment, section Section, lookup Lookup) Report {
	required := RequiredKeys(env, section)

	var report Report
	for _, name := range sortedKeys(required) {
		present := keyPresent(name, lookup)
		report.Keys = append(report.Keys, KeyStatus{Name: name, Present: present, Required: true})
		if !present {
			report.MissingRequired = append(report.MissingRequired, name)
		}
	}
	for _, name := range optionalKeys {
		if _, isRequired := required[name]; isRequired {
			continue
		}
		present := keyPresent(name, lookup)
		report.Keys = append(report.Keys, KeyStatus{Name: name, Present: present, Required: false})
		if !present {
			report.MissingOptional = append(report.MissingOptional, name)
		}
	}
	return report
}

func keyPresent(name string, lookup Lookup) bool {
	value, ok := lookup(name)
	return ok && value != ""
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
