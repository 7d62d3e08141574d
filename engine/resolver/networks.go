package resolver

import "strings"

// NetworkStatus explains what happened to one network entry during
// resolution. Exclusions are deliberate degrade-gracefully behavior, not
// errors; the reporting layer may surface them.
type NetworkStatus int

const (
	NetworkIncluded NetworkStatus = iota
	NetworkExcludedNoCredential
	NetworkExcludedUnresolvedPlaceholder
)

func (s NetworkStatus) String() string {
	switch s {
	case NetworkIncluded:
		return "included"
	case NetworkExcludedNoCredential:
		return "excluded: no credential provisioned"
	case NetworkExcludedUnresolvedPlaceholder:
		return "excluded: unresolved placeholder"
	default:
		return "unknown"
	}
}

// NetworkResolution is the per-entry outcome of network resolution.
type NetworkResolution struct {
	Name   string
	URL    string
	Status NetworkStatus
}

// NetworkMap maps network name to its final URL. Iteration order is
// unspecified; only the testnet guarantee holds.
type NetworkMap map[string]string

const (
	testnetName      = "testnet"
	devTestnetURL    = "http://127.0.0.1:8545"
	prodTestnetURL   = "http://anvil:8545"
	alchemyKeySuffix = "_ALCHEMY_API_KEY"
	globalAlchemyKey = "ALCHEMY_API_KEY"
)

// ResolveNetworks resolves every declared network against the snapshot. It
// returns the included URLs plus the per-entry outcomes. A testnet entry is
// always present in the result: when none survives, the environment
// fallback is synthesized.
func ResolveNetworks(env Environment, section Section, lookup Lookup) (NetworkMap, []NetworkResolution) {
	resolved := make(NetworkMap, len(section.Networks)+1)
	outcomes := make([]NetworkResolution, 0, len(section.Networks))
	for name, entry := range section.Networks {
		raw, ok := entry.URL()
		if !ok {
			continue
		}
		outcome := resolveNetwork(env, name, raw, lookup)
		outcomes = append(outcomes, outcome)
		if outcome.Status == NetworkIncluded {
			resolved[name] = outcome.URL
		}
	}
	if resolved[testnetName] == "" {
		resolved[testnetName] = TestnetFallback(env)
	}
	return resolved, outcomes
}

func resolveNetwork(env Environment, name, raw string, lookup Lookup) NetworkResolution {
	url := Substitute(raw, lookup)
	if env.IsProduction() && name != testnetName {
		key, ok := alchemyKeyFor(name, lookup)
		if !ok {
			return NetworkResolution{Name: name, Status: NetworkExcludedNoCredential}
		}
		// Trailing slash is stripped first so the join never yields "//".
		url = strings.TrimRight(url, "/") + "/" + key
	}
	if strings.Contains(url, "{") && strings.Contains(url, "}") {
		return NetworkResolution{Name: name, Status: NetworkExcludedUnresolvedPlaceholder}
	}
	return NetworkResolution{Name: name, URL: url, Status: NetworkIncluded}
}

// alchemyKeyFor prefers the per-network credential over the global one.
func alchemyKeyFor(name string, lookup Lookup) (string, bool) {
	if v, ok := lookup(strings.ToUpper(name) + alchemyKeySuffix); ok && v != "" {
		return v, true
	}
	if v, ok := lookup(globalAlchemyKey); ok && v != "" {
		return v, true
	}
	return "", false
}

// TestnetFallback is the hard-coded local node URL used when the document
// declares no usable testnet.
func TestnetFallback(env Environment) string {
	if env.IsProduction() {
		return prodTestnetURL
	}
	return devTestnetURL
}
