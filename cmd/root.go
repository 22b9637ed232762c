package cmd

import (
	"net"
	"net/http"
	"net/http/pprof"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sphinxcode/archon-status/internal/config"
)

var configDir string
var enableProfile bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "/etc/archon-status.d", "set directory to where your .hcl-configs are located")
	rootCmd.PersistentFlags().BoolVar(&enableProfile, "profile", false, "enable pprof http server")
}

var rootCmd = &cobra.Command{
	Use:   "archon-status",
	Short: "Archon status layer - MCP health and status reporting",
	Long:  "archon-status reports health, status and connection configuration of the Archon MCP service, either by probing it over HTTP or by inspecting its container directly",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if enableProfile {
			go func() {
				mux := http.NewServeMux()
				mux.HandleFunc("/debug/pprof/", pprof.Index)
				mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
				mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
				mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
				mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

				listener, err := net.Listen("tcp", ":0")
				if err != nil {
					log.Errorf("pprof server failed to listen: %v", err)
					return
				}
				log.Infof("Starting pprof server on http://localhost%s/debug/pprof/", listener.Addr().String())
				err = http.Serve(listener, mux)
				if err != nil {
					log.Errorf("pprof server error: %v", err)
				}
			}()
		}
	},
}

func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func loadSettings() *config.Settings {
	settings := &config.Settings{}
	if err := settings.GenerateFromConfigDir(configDir); err != nil {
		log.Fatalf("failed while trying to generate settings from dir '%+v', err: '%+v'", configDir, err)
	}
	return settings
}
