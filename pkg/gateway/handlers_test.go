package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphinxcode/archon-status/internal/config"
	"github.com/sphinxcode/archon-status/pkg/healthserver"
	"github.com/sphinxcode/archon-status/pkg/status"
)

type staticSource struct {
	record status.Record
}

func (s *staticSource) Check(ctx context.Context) status.Record {
	return s.record
}

type staticCreds struct {
	value string
	err   error
}

func (c *staticCreds) Get(ctx context.Context, key string) (string, error) {
	return c.value, c.err
}

func newTestApi(settings *config.Settings, dep config.Deployment, record status.Record, creds config.CredentialSource) *Api {
	resolver := status.NewResolverWithSource(&staticSource{record: record})
	return NewApi(":0", settings, dep, resolver, creds)
}

func performRequest(t *testing.T, api *Api, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	res := httptest.NewRecorder()
	api.Router().ServeHTTP(res, req)

	return res
}

func runningRecord(uptime float64) status.Record {
	return status.Record{
		Status:          status.StateRunning,
		Uptime:          &uptime,
		Logs:            []string{},
		ContainerStatus: status.ContainerStatusRunning,
	}
}

func defaultSettings(t *testing.T) *config.Settings {
	t.Helper()

	t.Setenv(config.EnvMCPServerURL, "")
	t.Setenv(config.EnvMCPPort, "")

	s := &config.Settings{}
	require.NoError(t, s.GenerateFromConfigDir(t.TempDir()))
	return s
}

func TestHandleStatus(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(42.5), nil)

	res := performRequest(t, api, "/api/mcp/status")

	require.Equal(t, http.StatusOK, res.Code)

	var record status.Record
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &record))
	assert.Equal(t, status.StateRunning, record.Status)
	require.NotNil(t, record.Uptime)
	assert.Equal(t, 42.5, *record.Uptime)
	assert.NotNil(t, record.Logs)
}

func TestHandleConfigLocal(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/config")

	require.Equal(t, http.StatusOK, res.Code)

	var reported config.Reported
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reported))
	assert.Equal(t, "localhost", reported.Host)
	assert.Equal(t, config.DefaultMCPPort, reported.Port)
	assert.Equal(t, config.ReportedTransport, reported.Transport)
	assert.Equal(t, config.DeploymentLocal, reported.Deployment)
	assert.Empty(t, reported.ProxyURL)
	assert.Equal(t, config.DefaultModelChoice, reported.ModelChoice)
}

func TestHandleConfigRemote(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Remote("http://svc:8051"), runningRecord(1), &staticCreds{value: "gpt-4.1"})

	res := performRequest(t, api, "/api/mcp/config")

	require.Equal(t, http.StatusOK, res.Code)

	var reported config.Reported
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reported))
	assert.Equal(t, "svc", reported.Host)
	assert.Equal(t, config.DeploymentRemote, reported.Deployment)
	assert.Equal(t, "http://svc:8051", reported.ProxyURL)
	assert.Equal(t, "gpt-4.1", reported.ModelChoice)
}

func TestHandleConfigCredentialFailureIsIsolated(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(1), &staticCreds{err: errors.New("database down")})

	res := performRequest(t, api, "/api/mcp/config")

	// the lookup failure must never surface as a failed request
	require.Equal(t, http.StatusOK, res.Code)

	var reported config.Reported
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reported))
	assert.Equal(t, config.DefaultModelChoice, reported.ModelChoice)
}

func TestHandleClientsLocal(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/clients")

	require.Equal(t, http.StatusOK, res.Code)

	var payload ClientsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.NotNil(t, payload.Clients)
	assert.Empty(t, payload.Clients)
	assert.Zero(t, payload.Total)
}

func TestHandleClientsRemotePassthrough(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/clients", req.URL.Path)
		res.Header().Set("Content-Type", "application/json")
		_, _ = res.Write([]byte(`{"clients": [{"id": "client-1"}], "total": 1}`))
	}))
	defer remote.Close()

	api := newTestApi(defaultSettings(t), config.Remote(remote.URL), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/clients")

	require.Equal(t, http.StatusOK, res.Code)

	var payload ClientsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Len(t, payload.Clients, 1)
	assert.Equal(t, 1, payload.Total)
}

func TestHandleClientsRemoteFailureFallsBackToStub(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusBadGateway)
	}))
	defer remote.Close()

	api := newTestApi(defaultSettings(t), config.Remote(remote.URL), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/clients")

	require.Equal(t, http.StatusOK, res.Code)

	var payload ClientsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Empty(t, payload.Clients)
	assert.Zero(t, payload.Total)
}

func TestHandleSessionsLocalIncludesUptime(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(120), nil)

	res := performRequest(t, api, "/api/mcp/sessions")

	require.Equal(t, http.StatusOK, res.Code)

	var payload SessionsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Zero(t, payload.ActiveSessions)
	assert.Equal(t, sessionTimeoutSeconds, payload.SessionTimeout)
	require.NotNil(t, payload.ServerUptimeSeconds)
	assert.Equal(t, 120.0, *payload.ServerUptimeSeconds)
}

func TestHandleSessionsOmitsUptimeWhenNotRunning(t *testing.T) {
	record := status.Record{Status: status.StateError, Logs: []string{}, ContainerStatus: status.ContainerStatusError}
	api := newTestApi(defaultSettings(t), config.Local(), record, nil)

	res := performRequest(t, api, "/api/mcp/sessions")

	require.Equal(t, http.StatusOK, res.Code)

	var payload SessionsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Nil(t, payload.ServerUptimeSeconds)
}

func TestHandleSessionsRemotePassthrough(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/sessions", req.URL.Path)
		res.Header().Set("Content-Type", "application/json")
		_, _ = res.Write([]byte(`{"active_sessions": 3, "session_timeout": 7200, "note": "extra fields survive"}`))
	}))
	defer remote.Close()

	api := newTestApi(defaultSettings(t), config.Remote(remote.URL), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/sessions")

	require.Equal(t, http.StatusOK, res.Code)

	// the remote body is forwarded verbatim, unknown fields included
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Equal(t, 3.0, payload["active_sessions"])
	assert.Equal(t, 7200.0, payload["session_timeout"])
	assert.Equal(t, "extra fields survive", payload["note"])
}

func TestHandleSessionsRemoteFailureFallsBackToStub(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		res.WriteHeader(http.StatusBadGateway)
	}))
	defer remote.Close()

	api := newTestApi(defaultSettings(t), config.Remote(remote.URL), runningRecord(99), nil)

	res := performRequest(t, api, "/api/mcp/sessions")

	require.Equal(t, http.StatusOK, res.Code)

	var payload SessionsPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Zero(t, payload.ActiveSessions)
	assert.Equal(t, sessionTimeoutSeconds, payload.SessionTimeout)
	require.NotNil(t, payload.ServerUptimeSeconds)
	assert.Equal(t, 99.0, *payload.ServerUptimeSeconds)
}

func TestHandleHealth(t *testing.T) {
	api := newTestApi(defaultSettings(t), config.Local(), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/health")

	require.Equal(t, http.StatusOK, res.Code)

	var payload HealthPayload
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload.Status)
	assert.Equal(t, "mcp", payload.Service)
}

// The reported transport is fixed to streamable-http even when the
// responder itself runs SSE. This mismatch is inherited behavior that
// upstream callers depend on; this test documents it rather than
// papering over it.
func TestReportedTransportDisagreesWithResponderSelfReport(t *testing.T) {
	responder := healthserver.NewResponder(healthserver.ProcessInfo{
		StartedAt: time.Now(),
		Transport: "sse",
	})
	remote := httptest.NewServer(responder.Router())
	defer remote.Close()

	settings := defaultSettings(t)
	settings.MCPServerURL = remote.URL

	api := newTestApi(settings, config.Remote(remote.URL), runningRecord(1), nil)

	res := performRequest(t, api, "/api/mcp/config")
	require.Equal(t, http.StatusOK, res.Code)

	var reported config.Reported
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reported))

	selfRes, err := http.Get(remote.URL + "/health")
	require.NoError(t, err)
	defer selfRes.Body.Close()

	var self healthserver.HealthResponse
	require.NoError(t, json.NewDecoder(selfRes.Body).Decode(&self))

	assert.Equal(t, "streamable-http", reported.Transport)
	assert.Equal(t, "sse", self.Transport)
	assert.NotEqual(t, self.Transport, reported.Transport)
}
