package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger.
//
// format is "json" (default) or "text"; an unknown level falls back to info.
func Setup(level, format, service string) *log.Entry {
	if strings.EqualFold(format, "text") {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	hostname, _ := os.Hostname()
	return log.WithFields(log.Fields{"service": service, "hostname": hostname})
}
