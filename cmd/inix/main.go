package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/KimNorgaard/go-inix"
)

const logName = "inix"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var merge bool

	rootCmd := &cobra.Command{
		Use:   "inix",
		Short: "Check, query and reformat Inix configuration files",
		Long: `inix works with the extended INI files used by simulation and game
configuration: [HEADER] sections, KEY=VALUE properties with optional
"; comment" suffixes, and standalone ";" or "//" comment lines.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeat for debug output)")
	rootCmd.PersistentFlags().BoolVar(&merge, "merge-duplicates", false, "merge repeated headers instead of reporting them")

	opts := func() []inix.Option {
		o := []inix.Option{inix.WithLogger(inix.NewCommonLogger(logName))}
		if merge {
			o = append(o, inix.MergeDuplicateHeaders())
		}
		return o
	}

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newFmtCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))

	return rootCmd
}
