package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"archivecheck/internal/deps"
	"archivecheck/internal/preflight"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Show external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := preflight.CheckSystemDeps(cfg)
			switch output {
			case outputJSON:
				return writeJSON(cmd, statuses)
			case outputTable:
			default:
				return fmt.Errorf("unsupported output format %q (expected %s or %s)", output, outputTable, outputJSON)
			}

			out := cmd.OutOrStdout()
			colorize := isTerminalWriter(out)
			for _, line := range toolStatusLines(statuses, colorize) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or json")
	return cmd
}

func toolStatusLines(statuses []deps.Status, colorize bool) []string {
	lines := make([]string, 0, len(statuses)+1)
	missing := false
	for _, status := range statuses {
		if status.Available {
			message := "Ready"
			if status.Command != "" {
				message = fmt.Sprintf("Ready (command: %s)", status.Command)
			}
			lines = append(lines, renderStatusLine(status.Name, statusOK, message, colorize))
			continue
		}
		detail := strings.TrimSpace(status.Detail)
		if detail == "" {
			detail = "not available"
		}
		lines = append(lines, renderStatusLine(status.Name, statusWarn, detail, colorize))
		missing = true
	}
	if missing {
		lines = append(lines, renderStatusLine("Install", statusInfo, deps.SevenZipInstallHint, colorize))
	}
	return lines
}
