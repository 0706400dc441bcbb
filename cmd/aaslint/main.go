// Command aaslint verifies an AAS instance document against the metamodel
// constraints and reports one line per violation with the path to the
// offending value.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/aas/aas3"
	"github.com/jacoelho/aas/document"
	"github.com/jacoelho/aas/reporting"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var xpath bool
	exit := 0

	cmd := &cobra.Command{
		Use:           "aaslint [flags] <document.yaml>",
		Short:         "Verify an AAS instance document",
		Long:          "Loads a YAML instance document and verifies every metamodel constraint,\nprinting one line per violation with the path to the offending value.\nUse \"-\" to read the document from standard input.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			environment, err := loadDocument(args[0], stdin)
			if err != nil {
				exit = 2
				return err
			}

			violations := 0
			for verr := range aas3.Verify(environment) {
				violations++
				fmt.Fprintf(stderr, "%s: %s\n", renderPath(verr, xpath), verr.Cause())
			}
			if violations > 0 {
				fmt.Fprintf(stderr, "%s fails to verify: %d violation(s)\n", args[0], violations)
				exit = 1
				return nil
			}

			fmt.Fprintf(stdout, "%s verifies\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&xpath, "xpath", false, "render paths as relative XPath instead of JSON path")
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if exit == 0 {
			exit = 2
		}
	}
	return exit
}

func loadDocument(path string, stdin io.Reader) (*aas3.Environment, error) {
	if path == "-" {
		return document.Load(stdin)
	}
	return document.LoadFile(path)
}

func renderPath(err *reporting.Error, xpath bool) string {
	segments := err.PathSegments()
	var path string
	if xpath {
		path = reporting.RelativeXPath(segments)
	} else {
		path = reporting.JSONPath(segments)
	}
	if path == "" {
		return "(document root)"
	}
	return path
}
