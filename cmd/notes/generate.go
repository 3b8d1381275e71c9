package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Print study notes for a PDF or image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		container, err := newContainer(ctx)
		if err != nil {
			return err
		}
		defer container.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		color.Cyan("Generating notes for %s ...", filepath.Base(args[0]))
		res, err := container.StudyService.Ingest(ctx, sessionId, filepath.Base(args[0]), f)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Notes)
		if res.FailedChunks > 0 {
			color.Yellow("%d of %d chunks could not be summarized", res.FailedChunks, res.Chunks)
		} else if res.Chunks > 0 {
			color.Green("Done: %d chunk(s), %d characters", res.Chunks, res.Characters)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
