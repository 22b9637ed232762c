package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/sphinxcode/archon-status/internal/config"
	"github.com/sphinxcode/archon-status/pkg/status"
)

// Api aggregates MCP status, configuration and session information for
// upstream callers. It owns no state of its own; every request is a
// fresh derivation.
type Api struct {
	listenAddr string
	router     *mux.Router
	srv        *http.Server

	settings *config.Settings
	dep      config.Deployment
	resolver *status.Resolver
	creds    config.CredentialSource
	client   *http.Client
}

func NewApi(listenAddr string, settings *config.Settings, dep config.Deployment, resolver *status.Resolver, creds config.CredentialSource) *Api {
	api := &Api{
		listenAddr: listenAddr,
		router:     mux.NewRouter(),
		settings:   settings,
		dep:        dep,
		resolver:   resolver,
		creds:      creds,
		client:     &http.Client{Timeout: status.DefaultProbeTimeout},
	}

	api.RegisterHandler("/api/mcp/status", []string{http.MethodGet}, api.handleStatus)
	api.RegisterHandler("/api/mcp/config", []string{http.MethodGet}, api.handleConfig)
	api.RegisterHandler("/api/mcp/clients", []string{http.MethodGet}, api.handleClients)
	api.RegisterHandler("/api/mcp/sessions", []string{http.MethodGet}, api.handleSessions)
	api.RegisterHandler("/api/mcp/health", []string{http.MethodGet}, api.handleHealth)

	return api
}

func (api *Api) RegisterHandler(path string, methods []string, handler func(http.ResponseWriter, *http.Request)) {
	api.router.
		Path(path).
		HandlerFunc(handler).
		Methods(methods...)
}

func (api *Api) Router() *mux.Router {
	return api.router
}

func (api *Api) Start() error {
	api.srv = &http.Server{
		Addr:    api.listenAddr,
		Handler: api.router,
	}

	log.Infof("gateway api listens on %s", api.srv.Addr)
	if err := api.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (api *Api) Shutdown() error {
	if api.srv == nil {
		return nil
	}

	log.Info("shutting down gateway api")
	return api.srv.Shutdown(context.Background())
}

func (api *Api) writeJSON(res http.ResponseWriter, code int, body interface{}) {
	out, err := json.Marshal(body)
	if err != nil {
		api.writeError(res, err)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(code)
	_, _ = res.Write(out)
}

func (api *Api) writeError(res http.ResponseWriter, err error) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(res).Encode(map[string]string{"error": err.Error()})
}
