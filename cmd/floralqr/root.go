package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logFile    string
	outputDir  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "floralqr",
		Short:         "floralqr turns URLs into styled QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the form
			return runForm(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a floralqr config file (default ~/.floralqr/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory downloads are saved into")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
