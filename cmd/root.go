package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/deepbrainspace/guardy/internal/config"
	"github.com/deepbrainspace/guardy/internal/processor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "guardy",
	Short: "Secret detection for developer workflows",
	Long: "\nguardy scans files and directories for strings that look like " +
		"credentials (API keys, private keys, tokens, connection strings) " +
		"while suppressing false positives from test fixtures, binary data, " +
		"and low-randomness text.\n\n" +
		"Scan reports are written to stdout; logs go to stderr so output " +
		"stays clean for piping and hook integrations.",
	PersistentPreRunE: runInit,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to configuration file (default: ~/.guardy/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultConfig.Logging.Level, "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultConfig.Logging.Format, "Logging format (json, text)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging, including per-file exclusion reasons")

	// Bind flags to viper
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Enable --version flag on root command
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("guardy version {{.Version}}\n")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Get custom config path if provided
	configPath, _ := cmd.Flags().GetString("config")

	err := config.InitConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration; %w", err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		viper.Set("logging.level", "debug")
	}

	return nil
}

func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()

	if err != nil {
		// A completed scan that found secrets is not a CLI failure; the
		// report already went to stdout, so return without the error
		// banner and let main exit non-zero.
		if errors.Is(err, processor.ErrSecretsFound) {
			return err
		}

		cmd, _, _ := rootCmd.Find(os.Args[1:])
		if cmd == nil {
			cmd = rootCmd
		}

		fmt.Printf("Error: %v\n", err)
		if !cmd.SilenceUsage {
			fmt.Printf("\n")
			cmd.SetOut(os.Stdout)
			cmd.Usage()
		}

		return err
	}

	return nil
}
