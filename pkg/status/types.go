package status

import "context"

// State is the normalized status of the monitored MCP service.
type State string

const (
	StateRunning  State = "running"
	StateStopped  State = "stopped"
	StateError    State = "error"
	StateNotFound State = "not_found"
	// StateTimeout only appears when decoding records from peers;
	// locally observed timeouts report StateError with a timeout
	// container status.
	StateTimeout State = "timeout"
)

// container_status values used in addition to raw container states.
const (
	ContainerStatusRunning  = "running"
	ContainerStatusError    = "error"
	ContainerStatusTimeout  = "timeout"
	ContainerStatusNotFound = "not_found"
	ContainerStatusNoDocker = "no_docker"
)

// Record is a single status observation. It is produced fresh per
// query and never persisted. Uptime is only set while running.
type Record struct {
	Status          State                  `json:"status"`
	Uptime          *float64               `json:"uptime"`
	Logs            []string               `json:"logs"`
	ContainerStatus string                 `json:"container_status"`
	Error           string                 `json:"error,omitempty"`
	Message         string                 `json:"message,omitempty"`
	ServiceInfo     map[string]interface{} `json:"service_info,omitempty"`
}

// Source produces one status record per call. Failures are folded into
// the record; a source never returns a transport-level error to its
// caller.
type Source interface {
	Check(ctx context.Context) Record
}

func errorRecord(containerStatus, message string) Record {
	return Record{
		Status:          StateError,
		Logs:            []string{},
		ContainerStatus: containerStatus,
		Error:           message,
	}
}
