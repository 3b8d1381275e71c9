//go:build !tesseract_exec

package extractor

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

func newRecognizer(cfg OCRConfig) (string, recognizer) {
	langs := languages(cfg.Language)

	return "gosseract", func(_ context.Context, path string) (string, error) {
		// A client is not safe for concurrent use, so every image gets its own.
		client := gosseract.NewClient()
		defer client.Close()

		if cfg.TessdataPrefix != "" {
			if err := client.SetTessdataPrefix(cfg.TessdataPrefix); err != nil {
				return "", fmt.Errorf("set tessdata prefix: %w", err)
			}
		}
		if err := client.SetLanguage(langs...); err != nil {
			return "", fmt.Errorf("set language: %w", err)
		}
		_ = client.SetVariable("preserve_interword_spaces", "1")

		if err := client.SetImage(path); err != nil {
			return "", fmt.Errorf("set image: %w", err)
		}
		return client.Text()
	}
}
