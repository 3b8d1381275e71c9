package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var question string

var askCmd = &cobra.Command{
	Use:   "ask <file>",
	Short: "Answer a question about a PDF or image",
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

		loaded, err := container.StudyService.Load(ctx, sessionId, filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		if loaded.Characters == 0 {
			color.Yellow("%s", loaded.Notes)
			return nil
		}

		res, err := container.StudyService.Ask(ctx, sessionId, question)
		if err != nil {
			return err
		}

		color.Cyan("Q: %s", question)
		fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&question, "question", "q", "", "question to ask about the file")
	_ = askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}
