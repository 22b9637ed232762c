package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sphinxcode/archon-status/internal/config"
	"github.com/sphinxcode/archon-status/pkg/credentials"
	"github.com/sphinxcode/archon-status/pkg/gateway"
	"github.com/sphinxcode/archon-status/pkg/status"
)

var (
	gatewayListenAddr string
	waitMCP           bool
)

func init() {
	rootCmd.AddCommand(serve)
	serve.PersistentFlags().StringVarP(&gatewayListenAddr, "listen", "l", ":8181", "set the address for the gateway api to listen on")
	serve.PersistentFlags().BoolVar(&waitMCP, "wait-mcp", false, "wait for the MCP service to report running before serving")
}

var serve = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP status gateway",
	Long:  "This sub-command starts the API gateway that reports MCP status, configuration and session information to upstream callers",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		dep := settings.Deployment()

		probeTimeout, err := time.ParseDuration(settings.ProbeTimeout)
		if err != nil {
			log.Fatalf("invalid probe timeout %q: %s", settings.ProbeTimeout, err)
		}

		var creds config.CredentialSource
		if settings.DatabaseURL != "" {
			store, err := credentials.Open(context.Background(), settings.DatabaseURL)
			if err != nil {
				log.WithError(err).Warn("credential store unavailable, model choice falls back to default")
			} else {
				creds = store
				defer store.Close()
			}
		}

		resolver := status.NewResolver(dep, probeTimeout, settings.ContainerName)

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		readinessSignals := make(chan os.Signal, 1)
		apiSignals := make(chan os.Signal, 1)

		go func() {
			for s := range signals {
				log.Infof("received event %s", s.String())
				if waitMCP {
					readinessSignals <- s
				}
				apiSignals <- s
			}
		}()

		if waitMCP {
			if err := resolver.WaitReady(context.Background(), readinessSignals); err != nil {
				log.Fatalf("failed while waiting for MCP readiness: '%+v'", err)
			}
		}

		api := gateway.NewApi(gatewayListenAddr, settings, dep, resolver, creds)

		go func() {
			for s := range apiSignals {
				if s == syscall.SIGINT || s == syscall.SIGTERM {
					if err := api.Shutdown(); err != nil {
						log.WithError(err).Error("error while shutting down gateway api")
					}
				}
			}
		}()

		if err := api.Start(); err != nil {
			log.Fatalf("gateway api stopped with error: %s", err)
		} else {
			log.Info("gateway api stopped without error")
		}
	},
}
