package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultProbeTimeout = 5 * time.Second

// HTTPProbe checks a remote MCP service by calling its /health
// endpoint. One outbound request per Check, bounded by the client
// timeout; no retries.
type HTTPProbe struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProbe(baseURL string, timeout time.Duration) *HTTPProbe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &HTTPProbe{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProbe) Check(ctx context.Context) Record {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/health", nil)
	if err != nil {
		return errorRecord(ContainerStatusError, err.Error())
	}

	res, err := p.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errorRecord(ContainerStatusTimeout, "probe timed out")
		}
		return errorRecord(ContainerStatusError, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errorRecord(ContainerStatusError, fmt.Sprintf("unexpected status %d", res.StatusCode))
	}

	var body map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return errorRecord(ContainerStatusError, err.Error())
	}

	record := Record{
		Status:          StateRunning,
		Logs:            []string{},
		ContainerStatus: ContainerStatusRunning,
		ServiceInfo:     body,
	}
	if uptime, ok := body["uptime"].(float64); ok {
		record.Uptime = &uptime
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "http", "host": p.baseURL, "status": record.Status}).Debug()
	return record
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
