package main

import (
	"context"
	"os"
	"os/signal"

	"novamind-be/internal/bootstrap"
	"novamind-be/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionId string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Turn PDFs and images into study notes from the terminal",
	Long: `notes runs the same extraction, summarization and Q&A pipeline as the
HTTP backend against a local file. Configuration comes from .env and the
environment (GEMINI_API_KEY, LLM_PROVIDER, TESSERACT_PATH, ...).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sessionId, "session", "s", "cli", "session id the document is stored under")
}

func newContainer(ctx context.Context) (*bootstrap.Container, error) {
	return bootstrap.NewContainer(ctx, config.Load())
}
