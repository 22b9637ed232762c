package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sphinxcode/archon-status/internal/config"
)

type countingSource struct {
	calls  int
	record Record
}

func (c *countingSource) Check(ctx context.Context) Record {
	c.calls++
	return c.record
}

func TestResolverRemoteModeUsesProbe(t *testing.T) {
	resolver := NewResolver(config.Remote("http://svc:8051"), 0, "archon-mcp")

	_, isProbe := resolver.source.(*HTTPProbe)
	assert.True(t, isProbe, "remote mode must resolve to the HTTP probe")
}

func TestResolverLocalModeUsesInspector(t *testing.T) {
	resolver := NewResolver(config.Local(), 0, "archon-mcp")

	_, isInspector := resolver.source.(*DockerInspector)
	assert.True(t, isInspector, "local mode must resolve to the container inspector")
}

func TestResolverRemoteRunningScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		res.Header().Set("Content-Type", "application/json")
		_, _ = res.Write([]byte(`{"uptime": 42.5}`))
	}))
	defer srv.Close()

	record := NewResolver(config.Remote(srv.URL), 0, "archon-mcp").Check(context.Background())

	assert.Equal(t, StateRunning, record.Status)
	require.NotNil(t, record.Uptime)
	assert.Equal(t, 42.5, *record.Uptime)
}

func TestResolverRemoteTimeoutScenario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		// stall until the client gives up so the server can shut down cleanly
		<-req.Context().Done()
	}))
	defer srv.Close()

	record := NewResolver(config.Remote(srv.URL), 50*time.Millisecond, "archon-mcp").Check(context.Background())

	assert.Equal(t, StateError, record.Status)
	assert.Equal(t, ContainerStatusTimeout, record.ContainerStatus)
}

func TestResolverRemoteUnreachableDoesNotFallBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {}))
	srv.Close()

	record := NewResolver(config.Remote(srv.URL), 0, "archon-mcp").Check(context.Background())

	// an unreachable remote service is a terminal probe error, never
	// a cue to inspect the local container instead
	assert.Equal(t, StateError, record.Status)
	assert.NotEqual(t, StateNotFound, record.Status)
}

func TestResolverLocalModePerformsNoNetworkCall(t *testing.T) {
	probed := false
	srv := httptest.NewServer(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		probed = true
	}))
	defer srv.Close()

	resolver := NewResolver(config.Local(), 0, "archon-mcp")

	inspector := resolver.source.(*DockerInspector)
	inspector.newClient = func() (dockerClient, error) {
		return nil, context.DeadlineExceeded
	}

	_ = resolver.Check(context.Background())

	assert.False(t, probed, "local mode must not issue HTTP probes")
}

func TestWaitReadyReturnsOnceRunning(t *testing.T) {
	source := &countingSource{record: Record{Status: StateRunning}}
	resolver := NewResolverWithSource(source)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := resolver.WaitReady(ctx, nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, source.calls, 1)
}
