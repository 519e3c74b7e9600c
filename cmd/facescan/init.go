package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/facescan/internal/config"
)

//go:embed templates/env.template
var envTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .env file for the service credentials",
		Long: `Initialize creates a .env file with empty AI_SERVICE_KEY and
AI_SERVICE_ENDPOINT entries. The file is readable only by its owner.

Examples:
  # Create .env in the current directory
  facescan init

  # Create the file in the facescan XDG config directory
  facescan init --global

  # Force overwrite an existing file
  facescan init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultEnvFile,
		"Output file path for the credentials file")
	cmd.Flags().BoolP("global", "g", false,
		"Write to the facescan directory under the XDG config home")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return err
	}
	if global {
		outputPath = filepath.Join(config.XDGConfigDir(), config.DefaultEnvFile)
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("credentials file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := envTemplate.ReadFile("templates/env.template")
	if err != nil {
		return fmt.Errorf("failed to read credentials template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// WriteFile keeps the mode of an existing file, so force-overwrites are tightened explicitly.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := os.Chmod(outputPath, 0600); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created credentials file: %s\n", outputPath)
	fmt.Fprintf(out, "\nSet %s and %s to the key and endpoint of your Azure AI Face resource.\n",
		config.EnvServiceKey, config.EnvServiceEndpoint)

	return nil
}
