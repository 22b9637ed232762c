package healthserver

import "time"

// ProcessInfo is the immutable process metadata the responder reports
// from. It is captured once at bootstrap and injected here.
type ProcessInfo struct {
	StartedAt time.Time
	Service   string
	Transport string
}

type HealthDetails struct {
	Status          string `json:"status"`
	APIService      bool   `json:"api_service"`
	LastHealthCheck string `json:"last_health_check"`
}

type HealthResponse struct {
	Status        string        `json:"status"`
	Uptime        float64       `json:"uptime"`
	UptimeSeconds float64       `json:"uptime_seconds"`
	Service       string        `json:"service"`
	Transport     string        `json:"transport"`
	Timestamp     string        `json:"timestamp"`
	Health        HealthDetails `json:"health"`
}

type RootResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

type ClientsResponse struct {
	Clients []interface{} `json:"clients"`
	Total   int           `json:"total"`
	Message string        `json:"message"`
}

type SessionsResponse struct {
	ActiveSessions      int     `json:"active_sessions"`
	SessionTimeout      int     `json:"session_timeout"`
	ServerUptimeSeconds float64 `json:"server_uptime_seconds"`
}

// SessionTimeoutSeconds is reported as-is; real session tracking does
// not exist on the SSE transport.
const SessionTimeoutSeconds = 3600
