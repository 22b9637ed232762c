package healthserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Responder answers liveness queries for the MCP service itself. It
// has a single state, "running", from construction until process exit;
// being reachable is the health signal.
type Responder struct {
	info ProcessInfo
	now  func() time.Time
}

func NewResponder(info ProcessInfo) *Responder {
	if info.Service == "" {
		info.Service = "archon-mcp"
	}
	if info.StartedAt.IsZero() {
		info.StartedAt = time.Now()
	}

	return &Responder{
		info: info,
		now:  time.Now,
	}
}

func (h *Responder) Router() *mux.Router {
	m := mux.NewRouter()
	m.Path("/health").HandlerFunc(h.HandleHealth)
	m.Path("/clients").HandlerFunc(h.HandleClients)
	m.Path("/sessions").HandlerFunc(h.HandleSessions)
	m.Path("/").HandlerFunc(h.HandleRoot)
	return m
}

func (h *Responder) uptime() float64 {
	return h.now().Sub(h.info.StartedAt).Seconds()
}

func (h *Responder) HandleHealth(res http.ResponseWriter, req *http.Request) {
	now := h.now()
	uptime := h.uptime()

	writeJSON(res, http.StatusOK, HealthResponse{
		Status:        "running",
		Uptime:        uptime,
		UptimeSeconds: uptime,
		Service:       h.info.Service,
		Transport:     h.info.Transport,
		Timestamp:     now.Format(time.RFC3339),
		Health: HealthDetails{
			Status:          "healthy",
			APIService:      true,
			LastHealthCheck: now.Format(time.RFC3339),
		},
	})
}

func (h *Responder) HandleRoot(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, RootResponse{
		Service: h.info.Service + "-health",
		Status:  "running",
	})
}

func (h *Responder) HandleClients(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, ClientsResponse{
		Clients: []interface{}{},
		Total:   0,
		Message: fmt.Sprintf("client tracking not implemented for %s transport", h.info.Transport),
	})
}

func (h *Responder) HandleSessions(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, SessionsResponse{
		ActiveSessions:      0,
		SessionTimeout:      SessionTimeoutSeconds,
		ServerUptimeSeconds: h.uptime(),
	})
}

func writeJSON(res http.ResponseWriter, code int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(code)
	_ = json.NewEncoder(res).Encode(body)
}

// Run serves the responder until an interrupt signal arrives.
func Run(h *Responder, listenAddr string, signals chan os.Signal) error {
	server := http.Server{
		Addr:    listenAddr,
		Handler: h.Router(),
	}

	go func() {
		for s := range signals {
			if s == syscall.SIGINT || s == syscall.SIGTERM {
				log.WithField("receivedSignal", s.String()).Info("shutting down health server")
				_ = server.Shutdown(context.Background())
			}
		}
	}()

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return err
	}

	return nil
}
