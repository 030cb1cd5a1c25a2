package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coretta-labs/derx509"
)

var x509Cmd = &cobra.Command{
	Use:   "x509 <file>",
	Short: "Parse a DER-encoded X.509 v3 certificate and print its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		cert, err := derx509.ParseCertificate(buf)
		if err != nil {
			// A parse failure is reported on the diagnostic stream but must
			// not change the command's exit code; only argument/I-O
			// problems do that.
			log.WithError(err).Error("certificate decode failed")
			return nil
		}
		printCertificateSummary(cert)
		return nil
	},
}

func printCertificateSummary(cert derx509.Certificate) {
	tbs := cert.TBSCertificate.Value

	fmt.Printf("Version: v%d\n", int(tbs.Version)+1)
	fmt.Printf("Serial:  %s\n", tbs.SerialNumber.String())
	fmt.Printf("Signature Algorithm: %s\n", tbs.Signature.Algorithm.String())

	if issuer, err := tbs.Issuer.Parse(); err == nil {
		fmt.Printf("Issuer:  %s\n", issuer.CommonName)
	}
	if subject, err := tbs.Subject.Parse(); err == nil {
		fmt.Printf("Subject: %s\n", subject.CommonName)
	}

	fmt.Printf("Validity: %s -> %s\n", tbs.Validity.NotBefore, tbs.Validity.NotAfter)

	if tbs.Extensions != nil {
		fmt.Printf("Extensions: %d\n", len(tbs.Extensions.List))
		for _, ext := range tbs.Extensions.List {
			name, ok := derx509.LookupOID(ext.ExtnID)
			if !ok {
				name = ext.ExtnID.String()
			}
			fmt.Printf("  - %s (critical=%t)\n", name, ext.Critical)
		}
	}
}
