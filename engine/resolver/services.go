package resolver

// Canonical service configuration keys. The resolved output always contains
// exactly these eight, regardless of document content.
const (
	KeyMCPServerHost = "MCP_SERVER_HOST"
	KeyMCPServerPort = "MCP_SERVER_PORT"
	KeyBackendHost   = "BACKEND_HOST"
	KeyBackendPort   = "BACKEND_PORT"
	KeyFrontendHost  = "FRONTEND_HOST"
	KeyFrontendPort  = "FRONTEND_PORT"
	KeyAnvilHost     = "ANVIL_HOST"
	KeyAnvilPort     = "ANVIL_PORT"
)

// CanonicalServiceKeys lists the service keys in their stable export order.
var CanonicalServiceKeys = []string{
	KeyMCPServerHost,
	KeyMCPServerPort,
	KeyBackendHost,
	KeyBackendPort,
	KeyFrontendHost,
	KeyFrontendPort,
	KeyAnvilHost,
	KeyAnvilPort,
}

// ServiceURLKeys lists the derived URL keys in their stable export order.
var ServiceURLKeys = []string{
	"MCP_SERVER_URL",
	"BACKEND_URL",
	"FRONTEND_URL",
	"ANVIL_URL",
}

// ServiceConfig maps canonical keys to resolved string values.
type ServiceConfig map[string]string

// ResolveServices merges document-declared service values over the
// environment defaults. Values pass through verbatim; downstream consumers
// validate host/port syntax.
func ResolveServices(env Environment, section Section) ServiceConfig {
	defaults := DefaultsFor(env)
	services := section.Services
	return ServiceConfig{
		KeyMCPServerHost: serviceValue(services, "mcp_server", hostField, defaults.Host),
		KeyMCPServerPort: serviceValue(services, "mcp_server", portField, defaults.MCPPort),
		KeyBackendHost:   serviceValue(services, "backend", hostField, defaults.Host),
		KeyBackendPort:   serviceValue(services, "backend", portField, defaults.BackendPort),
		KeyFrontendHost:  serviceValue(services, "frontend", hostField, defaults.FrontendHost),
		KeyFrontendPort:  serviceValue(services, "frontend", portField, defaults.FrontendPort),
		KeyAnvilHost:     serviceValue(services, "anvil", hostField, defaults.AnvilHost),
		KeyAnvilPort:     serviceValue(services, "anvil", portField, defaults.AnvilPort),
	}
}

// ServiceURLs derives the service URLs from a resolved config. Backend and
// frontend are client-facing, so they are always rendered against
// localhost rather than the bound host.
func ServiceURLs(cfg ServiceConfig) map[string]string {
	return map[string]string{
		"MCP_SERVER_URL": "http://" + cfg[KeyMCPServerHost] + ":" + cfg[KeyMCPServerPort],
		"BACKEND_URL":    "http://localhost:" + cfg[KeyBackendPort],
		"FRONTEND_URL":   "http://localhost:" + cfg[KeyFrontendPort],
		"ANVIL_URL":      "http://" + cfg[KeyAnvilHost] + ":" + cfg[KeyAnvilPort],
	}
}

func serviceValue(services map[string]ServiceEntry, name string, pick func(ServiceEntry) *Scalar, fallback string) string {
	if entry, ok := services[name]; ok {
		if v := pick(entry); v != nil {
			return v.String()
		}
	}
	return fallback
}

func hostField(e ServiceEntry) *Scalar { return e.Host }
func portField(e ServiceEntry) *Scalar { return e.Port }
