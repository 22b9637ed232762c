package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl"
	log "github.com/sirupsen/logrus"

	"github.com/sphinxcode/archon-status/internal/helper"
)

// Environment variables recognized by GenerateFromConfigDir. They win
// over anything found in config files.
const (
	EnvMCPServerURL  = "MCP_SERVER_URL"
	EnvMCPPort       = "ARCHON_MCP_PORT"
	EnvHealthPort    = "ARCHON_MCP_HEALTH_PORT"
	EnvTransport     = "ARCHON_MCP_TRANSPORT"
	EnvContainerName = "ARCHON_MCP_CONTAINER"
	EnvDatabaseURL   = "ARCHON_DATABASE_URL"
)

// GenerateFromConfigDir fills the settings from all .hcl files found in
// configDir (later files win), then applies environment overrides and
// defaults. A missing or empty config dir is not an error; the
// environment alone is a complete configuration.
func (s *Settings) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := filepath.Glob(configDir + "/*.hcl")
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return err
		}

		if err := hcl.Unmarshal(contents, s); err != nil {
			return fmt.Errorf("could not parse configuration file %s: %s", m, err.Error())
		}
	}

	s.applyEnv()
	s.applyDefaults()

	return nil
}

func (s *Settings) applyEnv() {
	// config file values may use the "ENV:SOME_VAR" indirection
	s.MCPServerURL = helper.ResolveEnv(s.MCPServerURL)
	s.Transport = helper.ResolveEnv(s.Transport)
	s.ContainerName = helper.ResolveEnv(s.ContainerName)
	s.DatabaseURL = helper.ResolveEnv(s.DatabaseURL)
	s.ProbeTimeout = helper.ResolveEnv(s.ProbeTimeout)

	if v := os.Getenv(EnvMCPServerURL); v != "" {
		s.MCPServerURL = v
	}
	if v := os.Getenv(EnvMCPPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.MCPPort = port
		} else {
			log.WithField("value", v).Warnf("ignoring invalid %s", EnvMCPPort)
		}
	}
	if v := os.Getenv(EnvHealthPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.HealthPort = port
		} else {
			log.WithField("value", v).Warnf("ignoring invalid %s", EnvHealthPort)
		}
	}
	if v := os.Getenv(EnvTransport); v != "" {
		s.Transport = v
	}
	if v := os.Getenv(EnvContainerName); v != "" {
		s.ContainerName = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		s.DatabaseURL = v
	}
}

func (s *Settings) applyDefaults() {
	if s.MCPPort == 0 {
		s.MCPPort = DefaultMCPPort
	}
	if s.HealthPort == 0 {
		s.HealthPort = DefaultHealthPort
	}
	s.Transport = helper.SetDefaultStringIfEmpty(s.Transport, DefaultTransport, "transport", "settings")
	s.ContainerName = helper.SetDefaultStringIfEmpty(s.ContainerName, DefaultContainerName, "containerName", "settings")
	s.ProbeTimeout = helper.SetDefaultStringIfEmpty(s.ProbeTimeout, DefaultProbeTimeout, "probeTimeout", "settings")
	s.MCPServerURL = strings.TrimRight(s.MCPServerURL, "/")
}
