package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
	log "github.com/sirupsen/logrus"
)

// initLogging configures the global logger and the color state from the
// persistent CLI flags. Debug wins over quiet when both are set.
func initLogging(debug, quiet, noColor bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:    true,
		DisableTimestamp: !debug,
		DisableColors:    noColor,
	})

	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case quiet:
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if noColor {
		color.NoColor = true
		text.DisableColors()
	}
}
