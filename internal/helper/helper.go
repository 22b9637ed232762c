package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveEnv resolves config values of the form "ENV:SOME_VAR" to the
// content of that environment variable. Plain values pass through.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, kind string) string {
	if len(value) == 0 {
		log.WithFields(log.Fields{"kind": kind, "field": field, "default": defaultValue}).Debug("falling back to default")
		return defaultValue
	}
	return value
}
