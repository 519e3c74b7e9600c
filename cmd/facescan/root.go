package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for facescan.
// Running it without a subcommand analyses the image in the current directory.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facescan",
		Short: "Detect faces and their attributes with Azure AI Face",
		Long: `facescan detects faces in people.jpg using an Azure AI Face resource.

For every face it prints the head pose (yaw, pitch, roll), the blur level
and the mask classification, then saves faces_detected.jpg with each face
outlined and numbered.

The service key and endpoint are read from the AI_SERVICE_KEY and
AI_SERVICE_ENDPOINT environment variables. Missing variables are looked up
in ./.env and then in the facescan directory under the XDG config home;
blank entries are ignored. Run 'facescan init' to create a .env template.`,
		Args:          cobra.NoArgs,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyzeCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
