// Command derdump decodes DER-encoded input, either as a generic ASN.1
// tree or as an X.509 v3 certificate, and renders it to the terminal.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("derdump failed")
		os.Exit(1)
	}
}
