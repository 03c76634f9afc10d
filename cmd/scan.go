package cmd

import (
	"os"

	"github.com/deepbrainspace/guardy/internal/config"
	"github.com/deepbrainspace/guardy/internal/processor"
	"github.com/deepbrainspace/guardy/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan files and directories for secrets",
	Long: "Scan the given files and directories for credential-like strings. " +
		"With no arguments the current directory is scanned.\n\n" +
		"Exits 0 when no secrets are found, 1 when secrets are found, and " +
		"reports the error otherwise, so it can gate git hooks and CI jobs.",
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", report.FormatText, "Report format (text, json)")
	scanCmd.Flags().StringSlice("ignore-path", nil, "Additional ignore glob (repeatable)")
	scanCmd.Flags().Int("max-file-size-mb", config.DefaultConfig.Scan.MaxFileSizeMB, "Size ceiling for scanned files in megabytes")
	scanCmd.Flags().Bool("no-gitignore", false, "Do not honor .gitignore rules")

	viper.BindPFlag("scan.max_file_size_mb", scanCmd.Flags().Lookup("max-file-size-mb"))
}

func runScan(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	format, _ := cmd.Flags().GetString("format")

	if extra, _ := cmd.Flags().GetStringSlice("ignore-path"); len(extra) > 0 {
		viper.Set("scan.ignore_paths", append(viper.GetStringSlice("scan.ignore_paths"), extra...))
	}
	if noGitignore, _ := cmd.Flags().GetBool("no-gitignore"); noGitignore {
		viper.Set("scan.respect_gitignore", false)
	}

	// ErrSecretsFound propagates up to Execute, which suppresses the error
	// banner; main maps any returned error to a non-zero exit.
	return processor.Process(os.Stdout, paths, format)
}
