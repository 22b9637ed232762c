package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sphinxcode/archon-status/pkg/healthserver"
)

var responderListenPort int

func init() {
	rootCmd.AddCommand(responder)
	responder.PersistentFlags().IntVarP(&responderListenPort, "listen-port", "p", 0, "set the port for the health responder to listen on (overrides config)")
}

var responder = &cobra.Command{
	Use:   "responder",
	Short: "Start the MCP-side health responder",
	Long:  "This sub-command starts the liveness listener that runs next to the MCP service and answers health, client and session queries",
	Run: func(cmd *cobra.Command, args []string) {
		settings := loadSettings()

		port := settings.HealthPort
		if responderListenPort != 0 {
			port = responderListenPort
		}

		h := healthserver.NewResponder(healthserver.ProcessInfo{
			StartedAt: time.Now(),
			Service:   "archon-mcp",
			Transport: settings.Transport,
		})

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		healthSignals := make(chan os.Signal, 1)
		procSignals := make(chan os.Signal, 1)

		go func() {
			for s := range signals {
				log.Infof("received event %s", s.String())
				healthSignals <- s
				procSignals <- s
			}
		}()

		go func() {
			log.Infof("health server listens on port %d", port)
			if err := healthserver.Run(h, fmt.Sprintf(":%d", port), healthSignals); err != nil {
				log.Fatalf("health server stopped with error: %s", err)
			} else {
				log.Info("health server stopped without error")
			}
		}()

		// the MCP service itself runs in its own process; this one
		// only keeps the responder alive until it is told to exit
		<-procSignals
	},
}
