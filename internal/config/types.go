package config

import "strings"

const (
	// DefaultMCPPort is the port the MCP service itself listens on.
	DefaultMCPPort = 8051
	// DefaultHealthPort is the port of the MCP-side health listener.
	DefaultHealthPort = 8052

	// DefaultTransport is what the health responder reports about
	// itself when nothing else is configured.
	DefaultTransport = "sse"

	// ReportedTransport is what the config endpoint reports. The
	// upstream UI only speaks streamable-http, so this is fixed even
	// when the responder itself runs SSE.
	ReportedTransport = "streamable-http"

	DefaultContainerName = "archon-mcp"
	DefaultProbeTimeout  = "5s"

	ModelChoiceKey     = "MODEL_CHOICE"
	DefaultModelChoice = "gpt-4o-mini"

	DeploymentRemote = "railway"
	DeploymentLocal  = "docker"
)

// Settings is the merged configuration for both listeners. Values come
// from optional .hcl files in the config dir, overridden by the
// environment (the environment is authoritative).
type Settings struct {
	MCPServerURL  string `hcl:"mcpServerUrl"`
	MCPPort       int    `hcl:"mcpPort"`
	HealthPort    int    `hcl:"healthPort"`
	Transport     string `hcl:"transport"`
	ContainerName string `hcl:"containerName"`
	DatabaseURL   string `hcl:"databaseUrl"`
	ProbeTimeout  string `hcl:"probeTimeout"`
}

// Deployment is the resolved operating mode: Remote carries the URL of
// an HTTP-reachable MCP service, Local means direct container
// introspection. It is constructed once at bootstrap and passed down;
// nothing re-reads the environment per request.
type Deployment struct {
	remoteURL string
}

func Remote(url string) Deployment {
	return Deployment{remoteURL: strings.TrimRight(url, "/")}
}

func Local() Deployment {
	return Deployment{}
}

func (d Deployment) IsRemote() bool {
	return d.remoteURL != ""
}

func (d Deployment) RemoteURL() string {
	return d.remoteURL
}

// Deployment returns the mode the settings imply: remote as soon as an
// MCP server URL is configured, local otherwise.
func (s *Settings) Deployment() Deployment {
	if s.MCPServerURL != "" {
		return Remote(s.MCPServerURL)
	}
	return Local()
}
