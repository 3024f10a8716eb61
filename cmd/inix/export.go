package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-inix"
	"github.com/KimNorgaard/go-inix/export"
)

func newExportCmd(opts func() []inix.Option) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Convert an Inix file to TOML, YAML, JSON or MessagePack",
		Long: `Convert the headers and properties of an Inix file to another format.
Comments are dropped and all values are written as strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := inix.ParseFile(args[0], opts()...)
			if doc.HasErrors() {
				printErrors(cmd.ErrOrStderr(), args[0], doc)
				return fmt.Errorf("export: %s has %d error(s)", args[0], len(doc.Errors()))
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			return export.Write(w, doc, export.Format(format))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatYAML), fmt.Sprintf("output format %v", export.Formats))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
