//go:build tesseract_exec

package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// newRecognizer shells out to the tesseract binary for builds without cgo.
func newRecognizer(cfg OCRConfig) (string, recognizer) {
	lang := strings.Join(languages(cfg.Language), "+")

	return "tesseract-exec", func(ctx context.Context, path string) (string, error) {
		cmd := exec.CommandContext(ctx, cfg.Binary, path, "stdout", "-l", lang)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("run %s: %w: %s", cfg.Binary, err, msg)
			}
			return "", fmt.Errorf("run %s: %w", cfg.Binary, err)
		}
		return stdout.String(), nil
	}
}
