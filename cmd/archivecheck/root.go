package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := newCommandContext(&configFlag)

	root := &cobra.Command{
		Use:   "archivecheck",
		Short: "Verify the integrity of 7z and ZIP archives under a directory",
		Long: "archivecheck walks a directory tree, discovers 7z and ZIP archives\n" +
			"including multi-volume sets, and verifies each archive with the\n" +
			"embedded decoders or an external 7-Zip binary.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	for _, sub := range []*cobra.Command{
		newCheckCommand(ctx),
		newToolsCommand(ctx),
		newConfigCommand(ctx),
	} {
		root.AddCommand(sub)
	}

	return root
}
