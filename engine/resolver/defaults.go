package resolver

// Defaults is the per-environment service default table. Anvil is pinned to
// the local node address in both environments.
type Defaults struct {
	Host         string
	FrontendHost string
	MCPPort      string
	BackendPort  string
	FrontendPort string
	AnvilHost    string
	AnvilPort    string
}

// DefaultsFor returns the default table for env. Development binds to
// loopback; production binds to all interfaces on the shifted port range.
// The frontend default is the literal localhost in development, since that
// is how clients reach it there.
func DefaultsFor(env Environment) Defaults {
	if env.IsProduction() {
		return Defaults{
			Host:         "0.0.0.0",
			FrontendHost: "0.0.0.0",
			MCPPort:      "5001",
			BackendPort:  "8081",
			FrontendPort: "3001",
			AnvilHost:    "127.0.0.1",
			AnvilPort:    "8545",
		}
	}
	return Defaults{
		Host:         "127.0.0.1",
		FrontendHost: "localhost",
		MCPPort:      "5000",
		BackendPort:  "8080",
		FrontendPort: "3000",
		AnvilHost:    "127.0.0.1",
		AnvilPort:    "8545",
	}
}
