package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/sphinxcode/archon-status/internal/config"
	"github.com/sphinxcode/archon-status/pkg/status"
)

type ClientsPayload struct {
	Clients []interface{} `json:"clients"`
	Total   int           `json:"total"`
}

type SessionsPayload struct {
	ActiveSessions      int      `json:"active_sessions"`
	SessionTimeout      int      `json:"session_timeout"`
	ServerUptimeSeconds *float64 `json:"server_uptime_seconds,omitempty"`
}

type HealthPayload struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

const sessionTimeoutSeconds = 3600

func (api *Api) handleStatus(res http.ResponseWriter, req *http.Request) {
	record := api.resolver.Check(req.Context())

	log.WithFields(log.Fields{"endpoint": "/api/mcp/status", "status": record.Status}).Debug("MCP status checked")
	api.writeJSON(res, http.StatusOK, record)
}

func (api *Api) handleConfig(res http.ResponseWriter, req *http.Request) {
	reported := config.Report(req.Context(), api.settings, api.dep, api.creds)

	log.WithFields(log.Fields{"endpoint": "/api/mcp/config", "deployment": reported.Deployment}).Info("MCP configuration")
	api.writeJSON(res, http.StatusOK, reported)
}

func (api *Api) handleClients(res http.ResponseWriter, req *http.Request) {
	payload := ClientsPayload{Clients: []interface{}{}, Total: 0}

	if api.dep.IsRemote() {
		var remote ClientsPayload
		if err := api.fetchRemote(req, "/clients", &remote); err == nil {
			if remote.Clients == nil {
				remote.Clients = []interface{}{}
			}
			api.writeJSON(res, http.StatusOK, remote)
			return
		} else {
			log.WithError(err).Debug("could not get clients from MCP service")
		}
	}

	api.writeJSON(res, http.StatusOK, payload)
}

func (api *Api) handleSessions(res http.ResponseWriter, req *http.Request) {
	if api.dep.IsRemote() {
		var remote map[string]interface{}
		if err := api.fetchRemote(req, "/sessions", &remote); err == nil {
			api.writeJSON(res, http.StatusOK, remote)
			return
		} else {
			log.WithError(err).Debug("could not get sessions from MCP service")
		}
	}

	payload := SessionsPayload{
		ActiveSessions: 0,
		SessionTimeout: sessionTimeoutSeconds,
	}

	record := api.resolver.Check(req.Context())
	if record.Status == status.StateRunning && record.Uptime != nil {
		payload.ServerUptimeSeconds = record.Uptime
	}

	log.WithFields(log.Fields{"endpoint": "/api/mcp/sessions", "active_sessions": payload.ActiveSessions}).Debug("MCP session info")
	api.writeJSON(res, http.StatusOK, payload)
}

// handleHealth answers without logging to keep the probe noise down.
func (api *Api) handleHealth(res http.ResponseWriter, req *http.Request) {
	api.writeJSON(res, http.StatusOK, HealthPayload{Status: "healthy", Service: "mcp"})
}

func (api *Api) fetchRemote(req *http.Request, path string, out interface{}) error {
	remoteReq, err := http.NewRequestWithContext(req.Context(), http.MethodGet, api.dep.RemoteURL()+path, nil)
	if err != nil {
		return err
	}

	res, err := api.client.Do(remoteReq)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errUnexpectedStatus(res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

type errUnexpectedStatus int

func (e errUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status %d", int(e))
}
