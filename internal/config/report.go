package config

import (
	"context"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Reported is the effective connection configuration handed to
// upstream callers of the gateway's config endpoint.
type Reported struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Transport   string `json:"transport"`
	Deployment  string `json:"deployment"`
	ProxyURL    string `json:"proxy_url,omitempty"`
	ModelChoice string `json:"model_choice"`
}

// CredentialSource is the one external lookup the reporter performs.
type CredentialSource interface {
	Get(ctx context.Context, key string) (string, error)
}

// Report derives the connection configuration from the settings and
// deployment mode. The model choice lookup is best-effort: any failure
// falls back to DefaultModelChoice and must never fail the report.
func Report(ctx context.Context, s *Settings, dep Deployment, creds CredentialSource) Reported {
	reported := Reported{
		Host:       "localhost",
		Port:       s.MCPPort,
		Transport:  ReportedTransport,
		Deployment: DeploymentLocal,
	}

	if dep.IsRemote() {
		reported.Host = hostFromURL(dep.RemoteURL())
		reported.Deployment = DeploymentRemote
		reported.ProxyURL = dep.RemoteURL()
	}

	reported.ModelChoice = resolveModelChoice(ctx, creds)

	return reported
}

func resolveModelChoice(ctx context.Context, creds CredentialSource) string {
	if creds == nil {
		return DefaultModelChoice
	}

	choice, err := creds.Get(ctx, ModelChoiceKey)
	if err != nil || choice == "" {
		log.WithError(err).WithField("key", ModelChoiceKey).Debug("credential lookup failed, using default")
		return DefaultModelChoice
	}

	return choice
}

func hostFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}

	// mirror the lenient string handling upstream callers rely on
	host := strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	return strings.Split(host, ":")[0]
}
