package status

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sphinxcode/archon-status/internal/config"
)

// Resolver binds the deployment mode to exactly one status source.
// Remote mode probes over HTTP, local mode inspects the container;
// there is no fallback between the two once the mode is fixed.
type Resolver struct {
	source Source
}

func NewResolver(dep config.Deployment, probeTimeout time.Duration, containerName string) *Resolver {
	if dep.IsRemote() {
		return &Resolver{source: NewHTTPProbe(dep.RemoteURL(), probeTimeout)}
	}
	return &Resolver{source: NewDockerInspector(containerName)}
}

func NewResolverWithSource(source Source) *Resolver {
	return &Resolver{source: source}
}

func (r *Resolver) Check(ctx context.Context) Record {
	return r.source.Check(ctx)
}

// WaitReady blocks until the source reports a running MCP service, or
// until an interrupt signal arrives.
func (r *Resolver) WaitReady(ctx context.Context, interrupt chan os.Signal) error {
	log.Info("waiting for MCP readiness")

	timer := time.NewTicker(1 * time.Second)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			record := r.Check(ctx)
			if record.Status == StateRunning {
				return nil
			}
			log.WithFields(log.Fields{"kind": "probe", "status": record.Status, "err": record.Error}).Warn("not ready yet")
		case s := <-interrupt:
			if s == syscall.SIGTERM || s == syscall.SIGINT {
				return errors.New("readiness interrupted")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
