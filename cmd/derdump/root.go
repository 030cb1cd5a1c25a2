package main

import (
	"github.com/gonvenience/bunt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var colorMode string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "derdump",
	Short: "Decode and render DER-encoded ASN.1 and X.509 data",
	Long: `
derdump decodes strict DER-encoded input. "derdump der" walks any DER stream
as a generic ASN.1 tree; "derdump x509" parses an X.509 v3 certificate and
renders its fields.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setting, err := bunt.ParseSetting(colorMode)
		if err != nil {
			return err
		}
		bunt.ColorSetting = setting
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&colorMode, "color", "c", "auto", "specify color usage: on, off, or auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic logging")

	rootCmd.AddCommand(derCmd)
	rootCmd.AddCommand(x509Cmd)
}
