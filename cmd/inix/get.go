package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-inix"
)

func newGetCmd(opts func() []inix.Option) *cobra.Command {
	var comment int
	var withComment bool

	cmd := &cobra.Command{
		Use:   "get <file> [header [key]]",
		Short: "Print a header, a property value or a standalone comment",
		Long: `Print part of an Inix file.

  inix get setup.ini CAMBER_RF        prints the whole section
  inix get setup.ini CAMBER_RF MIN    prints the value of MIN
  inix get setup.ini --comment 2      prints the second standalone comment

Header names may be given with or without brackets.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if comment > 0 && len(args) > 1 {
				return fmt.Errorf("get: --comment cannot be used with a header or key")
			}

			doc := inix.ParseFile(args[0], opts()...)
			if doc.HasErrors() {
				printErrors(cmd.ErrOrStderr(), args[0], doc)
				if doc.Len() == 0 {
					return doc.Err()
				}
			}
			out := cmd.OutOrStdout()

			if comment > 0 {
				c, err := doc.Comment(comment)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, c.Text)
				return err
			}

			if len(args) < 2 {
				for _, key := range doc.Keys() {
					fmt.Fprintln(out, key)
				}
				return nil
			}

			h, err := doc.Header(args[1])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				_, err = fmt.Fprint(out, h.String())
				return err
			}

			p, err := h.Property(args[2])
			if err != nil {
				return err
			}
			if withComment && p.Comment != "" {
				_, err = fmt.Fprintf(out, "%s ; %s\n", p.Value, p.Comment)
				return err
			}
			_, err = fmt.Fprintln(out, p.Value)
			return err
		},
	}

	cmd.Flags().IntVarP(&comment, "comment", "c", 0, "print the n-th standalone comment (1-based)")
	cmd.Flags().BoolVar(&withComment, "with-comment", false, "append the inline comment to a property value")

	return cmd
}
