package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"novamind-be/internal/pkg/logger"
)

const (
	DefaultTesseractPath = "tesseract"
	DefaultOCRLanguage   = "eng"
)

type OCRConfig struct {
	// Binary is the tesseract executable used by tesseract_exec builds.
	Binary string
	// Language is a tesseract language list such as "eng" or "eng+deu".
	Language string
	// TessdataPrefix points at the traineddata directory; empty keeps the library default.
	TessdataPrefix string
}

// recognizer returns the raw OCR text of one image file.
type recognizer func(ctx context.Context, path string) (string, error)

// OCRExtractor reads raster images with tesseract.
type OCRExtractor struct {
	engine    string
	recognize recognizer
	logger    logger.ILogger
}

func NewOCRExtractor(cfg OCRConfig, log logger.ILogger) *OCRExtractor {
	if cfg.Binary == "" {
		cfg.Binary = DefaultTesseractPath
	}
	if cfg.Language == "" {
		cfg.Language = DefaultOCRLanguage
	}
	engine, recognize := newRecognizer(cfg)
	return &OCRExtractor{engine: engine, recognize: recognize, logger: log}
}

func (e *OCRExtractor) Extract(ctx context.Context, path string) Result {
	if _, err := os.Stat(path); err != nil {
		e.logger.Error(moduleName, "OCR error", map[string]interface{}{"path": path, "error": err.Error()})
		return failedResult(fmt.Errorf("open image: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return failedResult(err)
	}

	text, err := e.recognize(ctx, path)
	if err != nil {
		e.logger.Error(moduleName, "OCR error", map[string]interface{}{
			"path":   path,
			"engine": e.engine,
			"error":  err.Error(),
		})
		return failedResult(fmt.Errorf("ocr: %w", err))
	}

	res := textResult(text, 1, 0)
	e.logger.Info(moduleName, "Image OCR finished", map[string]interface{}{
		"path":   path,
		"engine": e.engine,
		"status": res.Status,
		"chars":  len(res.Text),
	})
	return res
}

// languages splits "eng+deu" into the list form the tesseract API takes.
func languages(list string) []string {
	var out []string
	for _, l := range strings.Split(list, "+") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return []string{DefaultOCRLanguage}
	}
	return out
}
