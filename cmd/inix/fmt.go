package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-inix"
)

func newFmtCmd(opts func() []inix.Option) *cobra.Command {
	var overwrite bool
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite an Inix file in canonical form",
		Long: `Print the canonical reconstruction of an Inix file to stdout.

Keys, values and comments are trimmed, inline comments are written as
" ; comment" and every section is followed by a blank line.

Files with errors are not formatted. Use -w to overwrite the file in place
or -d to print the changes instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if overwrite && showDiff {
				return fmt.Errorf("fmt: -w cannot be used with -d")
			}

			path := args[0]
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			doc := inix.ParseString(string(source), opts()...)
			if doc.HasErrors() {
				printErrors(cmd.ErrOrStderr(), path, doc)
				return fmt.Errorf("fmt: %s has %d error(s)", path, len(doc.Errors()))
			}

			var buf bytes.Buffer
			if err := inix.NewEncoder(&buf).Encode(doc); err != nil {
				return err
			}

			switch {
			case overwrite:
				return writeFile(path, buf.Bytes())
			case showDiff:
				writeDiff(cmd.OutOrStdout(), lineDiff(string(source), buf.String()))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "print a line diff instead of the formatted file")

	return cmd
}

// writeFile replaces the contents of path, keeping its permission bits.
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// lineDiff compares before and after line by line.
func lineDiff(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// writeDiff prints diffs with "+ " and "- " prefixes on changed lines.
// Nothing is written when there are no changes.
func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff) {
	changed := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	for _, d := range diffs {
		prefix, c := "  ", fmt.Sprint
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, c = "+ ", insertColor.Sprint
		case diffmatchpatch.DiffDelete:
			prefix, c = "- ", deleteColor.Sprint
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintln(w, c(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}
