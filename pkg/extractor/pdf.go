package extractor

import (
	"context"
	"fmt"
	"strings"

	"novamind-be/internal/pkg/logger"

	"github.com/ledongthuc/pdf"
)

const moduleName = "EXTRACT"

// PDFExtractor reads the PDF text layer page by page.
type PDFExtractor struct {
	logger logger.ILogger
}

func NewPDFExtractor(log logger.ILogger) *PDFExtractor {
	return &PDFExtractor{logger: log}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (res Result) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("pdf reader panic: %v", r)
			e.logger.Error(moduleName, "PDF extract error", map[string]interface{}{"path": path, "error": err.Error()})
			res = failedResult(err)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		e.logger.Error(moduleName, "PDF extract error", map[string]interface{}{"path": path, "error": err.Error()})
		return failedResult(fmt.Errorf("open pdf: %w", err))
	}
	defer f.Close()

	var sb strings.Builder
	numPages := reader.NumPage()
	failed := 0

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return failedResult(err)
		}

		text, err := pageText(reader, i)
		if err != nil {
			failed++
			e.logger.Warn(moduleName, "Skipping unreadable PDF page", map[string]interface{}{
				"path":  path,
				"page":  i,
				"error": err.Error(),
			})
			continue
		}
		if text == "" {
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	res = textResult(sb.String(), numPages, failed)
	e.logger.Info(moduleName, "PDF extracted", map[string]interface{}{
		"path":         path,
		"pages":        numPages,
		"failed_pages": failed,
		"status":       res.Status,
	})
	return res
}

func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
