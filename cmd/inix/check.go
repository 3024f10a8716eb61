package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KimNorgaard/go-inix"
)

type checkResult struct {
	path string
	doc  *inix.Document
}

func newCheckCmd(opts func() []inix.Option) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check <file> [file...]",
		Short: "Report malformed lines in Inix files",
		Long: `Parse every file and report malformed headers, malformed properties,
duplicate headers and read failures. Files are parsed in parallel.

The command fails if any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := checkFiles(cmd.Context(), args, jobs, opts())
			if err != nil {
				return err
			}
			return reportCheck(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files parsed concurrently")

	return cmd
}

// checkFiles parses paths with at most jobs parses in flight. Results keep
// the order of paths.
func checkFiles(ctx context.Context, paths []string, jobs int, opts []inix.Option) ([]checkResult, error) {
	results := make([]checkResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkResult{path: path, doc: inix.ParseFile(path, opts...)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func reportCheck(w io.Writer, results []checkResult) error {
	var failed []error
	for _, r := range results {
		if !r.doc.HasErrors() {
			fmt.Fprintf(w, "%s %s\n", okColor.Sprint("ok"), r.path)
			continue
		}
		printErrors(w, r.path, r.doc)
		failed = append(failed, fmt.Errorf("%s: %d error(s)", r.path, len(r.doc.Errors())))
	}
	return errors.Join(failed...)
}
