package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/sphinxcode/archon-status/internal/config"
	"github.com/sphinxcode/archon-status/pkg/status"
)

// APIClient talks to a running gateway. The address may be a plain
// http URL or unix:///path/to/socket.
type APIClient struct {
	apiAddress string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
	}
}

func (api *APIClient) MCPStatus() *TypedAPIResponse[status.Record] {
	client, u, err := api.buildHTTPClientAndURL()
	if err != nil {
		return &TypedAPIResponse[status.Record]{Error: err}
	}
	return NewTypedAPIResponse[status.Record](client.Get(fmt.Sprintf("%s/api/mcp/status", u)))
}

func (api *APIClient) MCPConfig() *TypedAPIResponse[config.Reported] {
	client, u, err := api.buildHTTPClientAndURL()
	if err != nil {
		return &TypedAPIResponse[config.Reported]{Error: err}
	}
	return NewTypedAPIResponse[config.Reported](client.Get(fmt.Sprintf("%s/api/mcp/config", u)))
}

func (api *APIClient) buildHTTPClientAndURL() (*http.Client, *url.URL, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, nil, err
	}
	if u.Scheme != "unix" {
		return &http.Client{}, u, nil
	}

	socketPath := u.Path
	u.Scheme = "http"
	u.Host = "unix"
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", socketPath)
			},
		},
	}, u, nil
}
