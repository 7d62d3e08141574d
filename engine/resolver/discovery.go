package resolver

// Fixed key sets. The optional set is advisory only: absence never changes
// the exit code.
var (
	baselineRequiredKeys = []string{
		"ANTHROPIC_API_KEY",
		"BRAVE_SEARCH_API_KEY",
		"ETHERSCAN_API_KEY",
	}
	optionalKeys = []string{
		"ETHERSCAN_API_KEY",
		"ZEROX_API_KEY",
	}
)

const productionRequiredKey = "ALCHEMY_API_KEY"

// DiscoverPlaceholders collects every variable name referenced by a network
// URL template in the section. Entries without a usable template contribute
// nothing.
func DiscoverPlaceholders(section Section) map[string]struct{} {
	names := make(map[string]struct{})
	for _, entry := range section.Networks {
		raw, ok := entry.URL()
		if !ok {
			continue
		}
		for _, m := range placeholderPattern.FindAllStringSubmatch(raw, -1) {
			name := m[1]
			if name == "" {
				name = m[2]
			}
			names[name] = struct{}{}
		}
	}
	return names
}

// RequiredKeys unions the fixed baseline with the names discovered in the
// document. Production additionally requires the global Alchemy credential.
func RequiredKeys(env Environment, section Section) map[string]struct{} {
	required := make(map[string]struct{}, len(baselineRequiredKeys)+1)
	for _, key := range baselineRequiredKeys {
		required[key] = struct{}{}
	}
	if env.IsProduction() {
		required[productionRequiredKey] = struct{}{}
	}
	for name := range DiscoverPlaceholders(section) {
		required[name] = struct{}{}
	}
	return required
}
