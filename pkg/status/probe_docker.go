package status

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	log "github.com/sirupsen/logrus"
)

// dockerClient is the slice of the Docker API the inspector needs.
type dockerClient interface {
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	Close() error
}

// DockerInspector checks the MCP container through the local Docker
// daemon. A client is acquired per Check and released on every exit
// path.
type DockerInspector struct {
	containerName string
	newClient     func() (dockerClient, error)
	now           func() time.Time
}

func NewDockerInspector(containerName string) *DockerInspector {
	return &DockerInspector{
		containerName: containerName,
		newClient: func() (dockerClient, error) {
			return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		},
		now: time.Now,
	}
}

func (d *DockerInspector) Check(ctx context.Context) Record {
	cli, err := d.newClient()
	if err != nil {
		return errorRecord(ContainerStatusNoDocker, "Docker not available in this environment")
	}
	defer func() {
		_ = cli.Close()
	}()

	info, err := cli.ContainerInspect(ctx, d.containerName)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return Record{
				Status:          StateNotFound,
				Logs:            []string{},
				ContainerStatus: ContainerStatusNotFound,
				Message:         fmt.Sprintf("MCP container not found. Run: docker compose up -d %s", d.containerName),
			}
		}
		log.WithError(err).WithField("container", d.containerName).Error("failed to get container status")
		return errorRecord(ContainerStatusError, err.Error())
	}

	if info.ContainerJSONBase == nil || info.State == nil {
		return errorRecord(ContainerStatusError, "container state unavailable")
	}

	if !info.State.Running {
		return Record{
			Status:          StateStopped,
			Logs:            []string{},
			ContainerStatus: info.State.Status,
		}
	}

	record := Record{
		Status:          StateRunning,
		Logs:            []string{},
		ContainerStatus: ContainerStatusRunning,
	}

	// uptime stays unset when the start timestamp cannot be parsed
	if started, err := time.Parse(time.RFC3339Nano, info.State.StartedAt); err == nil {
		uptime := float64(int64(d.now().Sub(started).Seconds()))
		record.Uptime = &uptime
	}

	return record
}
